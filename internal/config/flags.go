package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the given argument list
// (normally os.Args[1:]). A dedicated flag set is used so the function can
// be called repeatedly, e.g. from tests.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver ("pgx" or "sqlite3")
//	-static static assets directory
//	-origins comma-separated CORS origin allow-list
//	-c/-config json file path with configs
//	-password-hash-key password hash key
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var databaseDriver string
	var staticDir string
	var corsOrigins string
	var jsonConfigPath string
	var passwordHashKey string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration

	flags := flag.NewFlagSet("carmarket", flag.ContinueOnError)
	flags.Var(&serverAddress, "a", "Net address host:port")
	flags.StringVar(&databaseDSN, "d", "", "Database DSN")
	flags.StringVar(&databaseDriver, "driver", "", "Database driver (pgx or sqlite3)")
	flags.StringVar(&staticDir, "static", "", "Static assets directory")
	flags.StringVar(&corsOrigins, "origins", "", "Comma-separated CORS origin allow-list")
	flags.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flags.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flags.StringVar(&passwordHashKey, "password-hash-key", "", "Password hash key")
	flags.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flags.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flags.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h, 30m)")
	flags.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	var origins []string
	if corsOrigins != "" {
		origins = strings.Split(corsOrigins, ",")
	}

	return &StructuredConfig{
		App: App{
			PasswordHashKey: passwordHashKey,
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
			TokenDuration:   tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			StaticDir:      staticDir,
			CORSOrigins:    origins,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
