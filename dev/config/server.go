package config

// SERVER_YML is written to dev/config/server.yml the first time the server
// runs with --dev. It points at DynamoDB Local on its default port. The email
// index must project ALL attributes or reads return only the keys.
const SERVER_YML = `
dynamodb:
  tableName: "posts-dev"
  emailIndex: "personal-email-index"
  region: "us-east-1"
  endpoint: "http://localhost:8000"

listener:
  port: 3000
`
