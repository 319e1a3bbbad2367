package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Phponly/Onlyoption/config"
	"github.com/Phponly/Onlyoption/directory"
	"github.com/Phponly/Onlyoption/option"
)

func main() {
	var (
		addr       string
		configFile string
		debug      bool
	)

	flag.StringVar(&addr, "addr", "localhost:8080", "Address to listen on")
	flag.StringVar(&configFile, "config", "config.yaml", "Configuration file")
	flag.BoolVar(&debug, "debug", false, "Debug mode")

	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	if debug {
		logger, err = zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
	}

	rawFile, err := os.ReadFile(configFile)
	if err != nil {
		logger.Sugar().Fatalf("Error reading config file %s: %v", configFile, err)
	}

	var cfg config.Config

	err = yaml.Unmarshal(rawFile, &cfg)
	if err != nil {
		logger.Sugar().Fatalf("Error parsing config file %s: %v", configFile, err)
	}

	err = cfg.Validate()
	if err != nil {
		logger.Sugar().Fatalf("Invalid configuration: %v", err)
	}

	repository, err := cfg.Repository.Config.CreateRepository()
	if err != nil {
		logger.Sugar().Fatalf("Error creating repository: %v", err)
	}

	fallback := option.None[directory.Profile]()

	if cfg.Fallback != nil {
		fallbackConfig := *cfg.Fallback

		// Built on the first lookup miss, then memoized.
		fallback = option.Defer(func() *directory.Profile {
			profile := fallbackConfig.CreateProfile()

			return &profile
		})
	}

	service := directory.LookupServiceImpl{
		Repository: repository,
		Fallback:   fallback,
		Clock:      clockwork.NewRealClock(),
		Logger:     logger,
	}

	server := directory.Server{
		Service: service,
	}

	router := mux.NewRouter()
	router.Path("/profile").Methods("GET").HandlerFunc(server.ProfileHandler)

	logger.Sugar().Infof("Listening on %s", addr)

	err = http.ListenAndServe(addr, router)
	if err != nil {
		logger.Sugar().Infof("Error serving: %v", err)
	}
}
