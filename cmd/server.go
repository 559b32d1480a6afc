package cmd

import (
	"os"
	"path/filepath"

	devconfig "github.com/Daskott/postbook/dev/config"
	"github.com/Daskott/postbook/server"
	"github.com/Daskott/postbook/utils"
	"github.com/spf13/cobra"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start a postbook HTTP server",
	Long: `The postbook server exposes the post handlers over HTTP:

  POST /posts            create a post
  PUT  /posts/{postId}   update a post
  GET  /posts/{email}    read a post by personal email`,
	Run: func(cmd *cobra.Command, args []string) {
		configFile := cfgFile
		if isDevEnv && configFile == "" {
			rootDir, err := os.Getwd()
			cobra.CheckErr(err)

			configFile, err = devConfigFilePath(rootDir)
			cobra.CheckErr(err)
		}

		config, err := newConfig(configFile)
		cobra.CheckErr(err)

		server.Start(config, isDevEnv)
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

// devConfigFilePath returns dev/config/server.yml under rootDir, writing the
// default dev config there first if the file is missing.
func devConfigFilePath(rootDir string) (string, error) {
	configDir := filepath.Join(rootDir, "dev", "config")
	configFilePath := filepath.Join(configDir, "server.yml")

	if utils.FileExist(configFilePath) {
		return configFilePath, nil
	}

	if err := utils.CreateDirIfNotExist(configDir); err != nil {
		return "", err
	}

	if err := os.WriteFile(configFilePath, []byte(devconfig.SERVER_YML), 0600); err != nil {
		return "", err
	}

	return configFilePath, nil
}
