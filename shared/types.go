package shared

type ServerConfig struct {
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb" validate:"required"`
	Listener ListenerConfig `mapstructure:"listener"`
}

type DynamoDBConfig struct {
	TableName  string `mapstructure:"tableName" validate:"required"`
	EmailIndex string `mapstructure:"emailIndex" validate:"required"`
	Region     string `mapstructure:"region"`
	Endpoint   string `mapstructure:"endpoint" validate:"omitempty,url"`
}

type ListenerConfig struct {
	Port int `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
}
