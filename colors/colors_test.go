package colors

import (
	"net/http"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	savedNoColor := color.NoColor
	defer func() {
		color.NoColor = savedNoColor
	}()

	color.NoColor = false
	assert.Equal(t, Green(http.StatusOK), Status(http.StatusOK))
	assert.Equal(t, Red(http.StatusInternalServerError), Status(http.StatusInternalServerError))
	assert.NotEqual(t, Status(http.StatusOK), Status(http.StatusInternalServerError))
}
