package models

const (
	ListenAddr     = ":8080"
	DefaultPicture = "https://placekitten.com/100/100" // used when signup leaves picture empty
	LogLevel       = "info"
	GinMode        = "debug"
)
