package config

func GetDefault() Config {
	return Config{
		Direction: "TD",
	}
}
