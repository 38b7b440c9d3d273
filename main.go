package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/sHooPmyWooP/roundnet/controller"
	"github.com/sHooPmyWooP/roundnet/db"
	"github.com/sHooPmyWooP/roundnet/web"
	"go.uber.org/zap"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	dbPath := os.Getenv("ROUNDNET_DB_PATH")
	if dbPath == "" {
		dbPath = "data/roundnet.db"
	}

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	admin := web.AdminAuth{
		User:     os.Getenv("ADMIN_USER"),
		Password: os.Getenv("ADMIN_PASSWORD"),
	}
	if admin.User == "" {
		admin.User = "admin"
	}
	if admin.Password == "" {
		admin.Password = "roundnet"
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("error creating logger: %v", err)
	}
	defer logger.Sync()

	clock := clock.New()
	db, err := db.New(dbPath, clock, logger)
	if err != nil {
		log.Fatalf("cannot open DB at %s: %v", dbPath, err)
	}

	ctrl, err := controller.New(clock, db, logger.Sugar())
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(portNum, ctrl, admin)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Setup a job that reconciles the partnership aggregates with the game
	// log once a day, in case the stored rows ever drift.
	wg.Add(1)
	go ctrl.RunPeriodicPartnershipRebuild(24*time.Hour, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
