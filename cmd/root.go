/*
Copyright © 2021 Edmond Cotterell

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/Daskott/postbook/colors"
	"github.com/Daskott/postbook/server"
	"github.com/Daskott/postbook/server/store"
	"github.com/Daskott/postbook/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Env vars each config key can be overridden with. They win over the config file.
var configEnvBindings = map[string]string{
	"dynamodb.tableName":  "DYNAMODB_TABLE_NAME",
	"dynamodb.emailIndex": "DYNAMODB_EMAIL_INDEX",
	"dynamodb.region":     "AWS_REGION",
	"dynamodb.endpoint":   "DYNAMODB_ENDPOINT",
	"listener.port":       "PORT",
}

var (
	cfgFile  string
	isDevEnv bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = createRootCmd()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// The Lambda runtime starts the binary with no arguments
	if len(os.Args) == 1 && os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" {
		rootCmd.SetArgs([]string{"lambda"})
	}

	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.Version = fmt.Sprintf("v%s", version.Version)
}

func createRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use: "postbook",
		Short: `postbook stores posts (contact records) in a DynamoDB table and
serves create, update and read-by-email handlers for them.

Run it as a local HTTP server with 'postbook server', or as an
AWS Lambda function behind API Gateway with 'postbook lambda'.`,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (settings can also come from env vars e.g. DYNAMODB_TABLE_NAME)")
	cmd.PersistentFlags().BoolVarP(&isDevEnv, "dev", "", false, "run in development mode")

	return cmd
}

// newConfig reads configFile, if any, and layers env vars on top of it.
func newConfig(configFile string) (*viper.Viper, error) {
	config := viper.New()

	config.SetDefault("dynamodb.emailIndex", store.DEFAULT_EMAIL_INDEX)
	config.SetDefault("listener.port", server.DEFAULT_PORT)

	for key, env := range configEnvBindings {
		if err := config.BindEnv(key, env); err != nil {
			return nil, err
		}
	}
	config.AutomaticEnv() // read in environment variables that match

	if configFile == "" {
		return config, nil
	}

	config.SetConfigFile(configFile)
	if err := config.ReadInConfig(); err != nil {
		return nil, formattedError("error reading config file: %v", err)
	}

	return config, nil
}

func formattedError(format string, a ...interface{}) error {
	return fmt.Errorf(colors.Red(format), a...)
}
