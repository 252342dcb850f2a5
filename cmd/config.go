package cmd

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	RoutingAPIBaseURL string
	DriversAPIBaseURL string
	SessionTTLMinutes int
}
