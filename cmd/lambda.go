package cmd

import (
	"github.com/Daskott/postbook/server"
	"github.com/spf13/cobra"
)

var lambdaCmd = &cobra.Command{
	Use:   "lambda",
	Short: "Run the post handlers as an AWS Lambda function",
	Long: `Serves API Gateway proxy events. POST creates a post, PUT updates the
post named by the 'postId' path parameter and GET reads the post whose
personal email is the 'email' path parameter.

Configuration usually comes from env vars, e.g. DYNAMODB_TABLE_NAME.`,
	Run: func(cmd *cobra.Command, args []string) {
		config, err := newConfig(cfgFile)
		cobra.CheckErr(err)

		server.StartLambda(config)
	},
}

func init() {
	rootCmd.AddCommand(lambdaCmd)
}
