package server

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadServerConfig(t *testing.T) {
	config := viper.New()
	config.Set("dynamodb.tableName", "posts")
	config.Set("dynamodb.emailIndex", "personal-email-index")
	config.Set("dynamodb.endpoint", "http://localhost:8000")
	config.Set("listener.port", 8080)

	serverConfig, err := loadServerConfig(config)
	assert.Nil(t, err)
	assert.Equal(t, "posts", serverConfig.DynamoDB.TableName)
	assert.Equal(t, "http://localhost:8000", serverConfig.DynamoDB.Endpoint)
	assert.Equal(t, 8080, serverConfig.Listener.Port)
}

func TestLoadServerConfigRejectsInvalidConfig(t *testing.T) {
	testCases := []struct {
		description string
		settings    map[string]interface{}
	}{
		{
			description: "Should require a table name",
			settings:    map[string]interface{}{"dynamodb.emailIndex": "personal-email-index"},
		},
		{
			description: "Should require an email index",
			settings:    map[string]interface{}{"dynamodb.tableName": "posts"},
		},
		{
			description: "Should reject a malformed endpoint",
			settings: map[string]interface{}{
				"dynamodb.tableName":  "posts",
				"dynamodb.emailIndex": "personal-email-index",
				"dynamodb.endpoint":   "not a url",
			},
		},
		{
			description: "Should reject an out of range port",
			settings: map[string]interface{}{
				"dynamodb.tableName":  "posts",
				"dynamodb.emailIndex": "personal-email-index",
				"listener.port":       70000,
			},
		},
	}

	for _, tc := range testCases {
		config := viper.New()
		for key, value := range tc.settings {
			config.Set(key, value)
		}

		_, err := loadServerConfig(config)
		assert.NotNil(t, err, tc.description)
	}
}
