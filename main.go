package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"devfolio/config"
	"devfolio/database"
	"devfolio/logger"
	"devfolio/web"
	"devfolio/web/service"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			if err := database.CloseDB(); err != nil {
				logger.Warning("close db err:", err)
			}
			logger.CloseLogger()
			return
		}
	}
}

func updateSetting(username string, password string) {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	if username != "" || password != "" {
		userService := service.UserService{}
		err := userService.UpdateFirstUser(username, password)
		if err != nil {
			fmt.Println("set username and password failed:", err)
		} else {
			fmt.Println("set username and password success")
		}
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	rootCmd := &cobra.Command{
		Use:     config.GetName(),
		Version: config.GetVersion(),
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var username string
	var password string
	settingCmd := &cobra.Command{
		Use:   "setting",
		Short: "Update admin credentials",
		Run: func(cmd *cobra.Command, args []string) {
			updateSetting(username, password)
		},
	}
	settingCmd.Flags().StringVarP(&username, "username", "u", "", "set admin username")
	settingCmd.Flags().StringVarP(&password, "password", "p", "", "set admin password")

	rootCmd.AddCommand(runCmd, settingCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
