package config

import (
	"flag"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	AppName  = "Inventory Service"
	Revision = "1"
)

var (
	// Build time arguments
	AppVersion  string
	Sha1Version string
	BuildTime   string

	// Runtime flags
	profile     *string
	printRoutes *bool
)

type Config struct {
	AppName         string       `json:"appName"         yaml:"appName"`
	AppNameDesc     string       `json:"appNameDesc"     yaml:"appNameDesc"`
	AppVersion      string       `json:"appVersion"      yaml:"appVersion"`
	AppVersionDesc  string       `json:"appVersionDesc"  yaml:"appVersionDesc"`
	Sha1Version     string       `json:"sha1Version"     yaml:"sha1Version"`
	Sha1VersionDesc string       `json:"sha1VersionDesc" yaml:"sha1VersionDesc"`
	BuildTime       string       `json:"buildTime"       yaml:"buildTime"`
	BuildTimeDesc   string       `json:"buildTimeDesc"   yaml:"buildTimeDesc"`
	Profile         string       `json:"profile"         yaml:"profile"`
	ProfileDesc     string       `json:"profileDesc"     yaml:"profileDesc"`
	Revision        string       `json:"revision"        yaml:"revision"`
	RevisionDesc    string       `json:"revisionDesc"    yaml:"revisionDesc"`
	Port            string       `json:"port"            yaml:"port"`
	PortDesc        string       `json:"portDesc"        yaml:"portDesc"`
	PrintRoutes     bool         `json:"printRoutes"     yaml:"printRoutes"`
	PrintRoutesDesc string       `json:"printRoutesDesc" yaml:"printRoutesDesc"`
	Config          ConfigSource `json:"config"          yaml:"config"`
	ConfigDesc      string       `json:"configDesc"      yaml:"configDesc"`
	Log             LogConfig    `json:"log"             yaml:"log"`
	LogDesc         string       `json:"logDesc"         yaml:"logDesc"`
	Db              DbConfig     `json:"db"              yaml:"db"`
	DbDesc          string       `json:"dbDesc"          yaml:"dbDesc"`
	Email           EmailConfig  `json:"email"           yaml:"email"`
	EmailDesc       string       `json:"emailDesc"       yaml:"emailDesc"`
	RabbitMQ        QueueConfig  `json:"rabbitmq"        yaml:"rabbitmq"`
	RabbitMQDesc    string       `json:"rabbitmqDesc"    yaml:"rabbitmqDesc"`
}

type ConfigSource struct {
	Print     bool   `json:"print"     yaml:"print"`
	PrintDesc string `json:"printDesc" yaml:"printDesc"`
}

type LogConfig struct {
	Level          string `json:"level"          yaml:"level"`
	LevelDesc      string `json:"levelDesc"      yaml:"levelDesc"`
	Structured     bool   `json:"structured"     yaml:"structured"`
	StructuredDesc string `json:"structuredDesc" yaml:"structuredDesc"`
}

type DbConfig struct {
	Name        string `json:"name"        yaml:"name"`
	NameDesc    string `json:"nameDesc"    yaml:"nameDesc"`
	Host        string `json:"host"        yaml:"host"`
	HostDesc    string `json:"hostDesc"    yaml:"hostDesc"`
	Port        string `json:"port"        yaml:"port"`
	PortDesc    string `json:"portDesc"    yaml:"portDesc"`
	Migrate     bool   `json:"migrate"     yaml:"migrate"`
	MigrateDesc string `json:"migrateDesc" yaml:"migrateDesc"`
	Clean       bool   `json:"clean"       yaml:"clean"`
	CleanDesc   string `json:"cleanDesc"   yaml:"cleanDesc"`
	User        string `json:"user"        yaml:"user"`
	UserDesc    string `json:"userDesc"    yaml:"userDesc"`
	Pass        string `json:"pass"        yaml:"pass"        sensitive:"true"`
	PassDesc    string `json:"passDesc"    yaml:"passDesc"`
}

type EmailConfig struct {
	Url        string `json:"url"        yaml:"url"`
	UrlDesc    string `json:"urlDesc"    yaml:"urlDesc"`
	ApiKey     string `json:"apiKey"     yaml:"apiKey"     sensitive:"true"`
	ApiKeyDesc string `json:"apiKeyDesc" yaml:"apiKeyDesc"`
	Mock       bool   `json:"mock"       yaml:"mock"`
	MockDesc   string `json:"mockDesc"   yaml:"mockDesc"`
}

type QueueConfig struct {
	Host        string             `json:"host"        yaml:"host"`
	HostDesc    string             `json:"hostDesc"    yaml:"hostDesc"`
	Port        string             `json:"port"        yaml:"port"`
	PortDesc    string             `json:"portDesc"    yaml:"portDesc"`
	User        string             `json:"user"        yaml:"user"`
	UserDesc    string             `json:"userDesc"    yaml:"userDesc"`
	Pass        string             `json:"pass"        yaml:"pass"        sensitive:"true"`
	PassDesc    string             `json:"passDesc"    yaml:"passDesc"`
	Mock        bool               `json:"mock"        yaml:"mock"`
	MockDesc    string             `json:"mockDesc"    yaml:"mockDesc"`
	Stock       StockQueueConfig   `json:"stock"       yaml:"stock"`
	StockDesc   string             `json:"stockDesc"   yaml:"stockDesc"`
	Product     ProductQueueConfig `json:"product"     yaml:"product"`
	ProductDesc string             `json:"productDesc" yaml:"productDesc"`
}

type StockQueueConfig struct {
	Exchange     string `json:"exchange"     yaml:"exchange"`
	ExchangeDesc string `json:"exchangeDesc" yaml:"exchangeDesc"`
}

type ProductQueueConfig struct {
	Queue     string                `json:"queue"     yaml:"queue"`
	QueueDesc string                `json:"queueDesc" yaml:"queueDesc"`
	Dlt       ProductQueueDltConfig `json:"dlt"       yaml:"dlt"`
	DltDesc   string                `json:"dltDesc"   yaml:"dltDesc"`
}

type ProductQueueDltConfig struct {
	Exchange     string `json:"exchange"     yaml:"exchange"`
	ExchangeDesc string `json:"exchangeDesc" yaml:"exchangeDesc"`
}

func (c *Config) Print() {
	if c.Config.Print {
		log.Info().Interface("config", c).Msg("the following configurations have successfully loaded")
	}
}

func init() {
	profile = flag.String("p", "local", "profile for the application config")
	printRoutes = flag.Bool("routes", false, "print the routing documentation and exit")

	viper.SetDefault("port", "8080")
	viper.SetDefault("profile", "local")
	viper.SetDefault("printRoutes", false)

	viper.SetDefault("config.print", false)

	viper.SetDefault("log.level", "trace")
	viper.SetDefault("log.structured", false)

	viper.SetDefault("db.name", "inventory-db")
	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.user", "postgres")
	viper.SetDefault("db.pass", "postgres")
	viper.SetDefault("db.migrate", true)
	viper.SetDefault("db.clean", false)

	viper.SetDefault("email.url", "http://localhost:8090")
	viper.SetDefault("email.apiKey", "")
	viper.SetDefault("email.mock", true)

	viper.SetDefault("rabbitmq.host", "localhost")
	viper.SetDefault("rabbitmq.port", "5672")
	viper.SetDefault("rabbitmq.user", "guest")
	viper.SetDefault("rabbitmq.pass", "guest")
	viper.SetDefault("rabbitmq.mock", false)
	viper.SetDefault("rabbitmq.stock.exchange", "stock.exchange")
	viper.SetDefault("rabbitmq.product.queue", "product.queue")
	viper.SetDefault("rabbitmq.product.dlt.exchange", "product.dlt.exchange")
}

func Load() *Config {
	flag.Parse()

	config := createConfig()

	if err := loadLocalConfigs(config); err != nil {
		log.Warn().Err(err).Msg("no config file found, using defaults")
	}

	if err := viper.Unmarshal(config); err != nil {
		log.Fatal().Err(err).Msg("failed to load configurations")
	}

	config.Profile = *profile
	config.PrintRoutes = *printRoutes

	return config
}

// LoadDefaults builds a configuration from hard coded defaults only. Handy
// for tests, which shouldn't go looking for config files or parse flags.
func LoadDefaults() *Config {
	config := createConfig()

	if err := viper.Unmarshal(config); err != nil {
		log.Fatal().Err(err).Msg("failed to load default configurations")
	}

	return config
}

func createConfig() *Config {
	config := &Config{}
	setDescriptions(config)

	config.AppName = AppName
	config.Revision = Revision
	config.AppVersion = AppVersion
	config.Sha1Version = Sha1Version
	config.BuildTime = BuildTime

	return config
}

func loadLocalConfigs(config *Config) error {
	log.Info().Msg("loading local configurations...")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	return viper.ReadInConfig()
}

func setDescriptions(config *Config) {
	config.AppNameDesc = "Name of the application in a human readable format. Example: Inventory Service"
	config.AppVersionDesc = "Semantic version of the application. Example: v1.2.3"
	config.Sha1VersionDesc = "Git sha1 hash of the application version."
	config.BuildTimeDesc = "When the application was compiled."
	config.ProfileDesc = "Running profile of the application, can assist with sensible defaults or change behavior. Examples: local, dev, prod"
	config.RevisionDesc = "A hard coded revision handy for quickly determining if local changes are running. Examples: 1, Two, 9999"
	config.PortDesc = "Port that the application will bind to on startup. Examples: 8080, 3000"
	config.PrintRoutesDesc = "Print the generated routing documentation on startup and exit."
	config.ConfigDesc = "Settings for where and how the application should get its configurations."
	config.LogDesc = "Settings for application logging."
	config.DbDesc = "Database configurations."
	config.EmailDesc = "Email service configurations."
	config.RabbitMQDesc = "Rabbit MQ configurations."

	config.Config.PrintDesc = "Print configurations on startup."

	config.Log.LevelDesc = "The lowest level that the application should log at. Examples: info, warn, error."
	config.Log.StructuredDesc = "Whether the application should output structured (json) logging, or human friendly plain text."

	config.Db.NameDesc = "The name of the database to connect to."
	config.Db.HostDesc = "Host of the database."
	config.Db.PortDesc = "Port of the database."
	config.Db.MigrateDesc = "Whether or not database migrations should be executed on startup."
	config.Db.CleanDesc = "WARNING: THIS WILL DELETE ALL DATA FROM THE DB. Used only during migration. If clean is true, all 'down' migrations are executed."
	config.Db.UserDesc = "User the application will use to connect to the database."
	config.Db.PassDesc = "Password the application will use for connecting to the database."

	config.Email.UrlDesc = "Base url of the external email service used for shipping notifications."
	config.Email.ApiKeyDesc = "API key sent to the email service with every request."
	config.Email.MockDesc = "Whether the application should pretend emails were sent rather than calling the email service."

	config.RabbitMQ.HostDesc = "RabbitMQ's broker host."
	config.RabbitMQ.PortDesc = "RabbitMQ's broker host port."
	config.RabbitMQ.UserDesc = "User the application will use to connect to RabbitMQ."
	config.RabbitMQ.PassDesc = "Password the application will use to connect to RabbitMQ."
	config.RabbitMQ.MockDesc = "Whether or not the application should mock sending messages to RabbitMQ."
	config.RabbitMQ.StockDesc = "RabbitMQ settings for stock level updates."
	config.RabbitMQ.ProductDesc = "RabbitMQ settings for product events arriving from upstream."
	config.RabbitMQ.Stock.ExchangeDesc = "RabbitMQ exchange to use for posting stock updates."
	config.RabbitMQ.Product.QueueDesc = "Queue used for listening to product creation events coming from a product management system."
	config.RabbitMQ.Product.DltDesc = "Configurations for the product dead letter topic, where messages that fail to be read from the queue are written."
	config.RabbitMQ.Product.Dlt.ExchangeDesc = "Exchange used for posting messages to the dead letter topic."
}
