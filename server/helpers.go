package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Daskott/postbook/shared"
	"github.com/go-playground/validator"
	"github.com/spf13/viper"
)

// ---------------------------------------------------------------------------------//
// Handler Helper functions
// --------------------------------------------------------------------------------//

func writeResponse(rw http.ResponseWriter, response Response) {
	rw.WriteHeader(response.StatusCode)
	if err := json.NewEncoder(rw).Encode(response.Body); err != nil {
		logg.Errorf("writeResponse: %v", err)
	}
}

// ---------------------------------------------------------------------------------//
// Server Helper functions
// --------------------------------------------------------------------------------//

// loadServerConfig decodes config into a ServerConfig and validates it.
func loadServerConfig(config *viper.Viper) (*shared.ServerConfig, error) {
	serverConfig := shared.ServerConfig{}
	if err := config.Unmarshal(&serverConfig); err != nil {
		return nil, fmt.Errorf("unable to decode server config: %v", err)
	}

	if err := validator.New().Struct(serverConfig); err != nil {
		return nil, fmt.Errorf("invalid server config: %v", err)
	}

	return &serverConfig, nil
}

func serve(server *http.Server) {
	logg.Infof("Postbook server is listening on port%v", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Fatal(err)
	}
}

func cleanup(server *http.Server) {
	ctxShutDown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutDown); err != nil {
		logg.Fatalf("Postbook server shutdown failed:%+s", err)
	}

	logg.Infof("Postbook server stopped properly")
}

func fatalOnError(err error) {
	if err != nil {
		logg.Fatal(err)
	}
}
