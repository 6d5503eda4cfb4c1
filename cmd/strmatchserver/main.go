// strmatchserver keeps a profile database resident in memory and serves
// match rankings over HTTP: GET /match/{sample_id} for samples already in
// the database, POST /match for ad hoc query profiles.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"cloud.google.com/go/storage"
	_ "github.com/carbocation/strmatch/compileinfoprint"
	"github.com/carbocation/strmatch/profile"
)

var global *Global

func main() {
	errors := make(chan error, 1)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig,
		os.Interrupt,
		os.Kill,
		syscall.SIGTERM,
		syscall.SIGUSR1,
	)

	configPath := flag.String("config", "", "Optional TOML config file; flags override its values")
	databasePath := flag.String("database", "", "Path to the candidate profile table. May be local or gs://, and may be compressed.")
	port := flag.Int("port", 0, "Port for HTTP server")
	workers := flag.Int("workers", 0, "Shards per ranking scan. 0 means one per CPU.")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalln(err)
	}
	if *databasePath != "" {
		cfg.Database = *databasePath
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *workers != 0 {
		cfg.Workers = *workers
	}
	if cfg.Workers < 1 {
		cfg.Workers = runtime.NumCPU()
	}

	if cfg.Database == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide --database")
	}

	var sclient *storage.Client
	if strings.HasPrefix(cfg.Database, "gs://") {
		sclient, err = storage.NewClient(context.Background())
		if err != nil {
			log.Fatalln(err)
		}
	}

	table, err := profile.OpenTable(cfg.Database, sclient)
	if err != nil {
		log.Fatalln(err)
	}

	byID := make(map[string]int, len(table.Records))
	for i := range table.Records {
		if _, seen := byID[table.Records[i].SampleID]; seen {
			continue
		}
		byID[table.Records[i].SampleID] = i
	}

	global = &Global{
		log:          log.New(os.Stderr, log.Prefix(), log.Ldate|log.Ltime),
		DatabasePath: cfg.Database,
		Workers:      cfg.Workers,
		table:        table,
		byID:         byID,
	}

	global.log.Println("Serving", len(table.Records), "profiles across", len(table.Loci), "loci")

	go func() {
		global.log.Println("Starting HTTP server on port", cfg.Port)
		if err := http.ListenAndServe(fmt.Sprintf(`:%d`, cfg.Port), router(global)); err != nil {
			errors <- err
			global.log.Println(err)
			sig <- syscall.SIGTERM
			return
		}
	}()

Outer:
	for {
		select {
		case sigl := <-sig:

			if sigl == syscall.SIGUSR1 {
				SigStatus()
				continue
			}

			// By default, exit
			global.log.Printf("\nExit: %s\n", sigl.String())

			break Outer

		case err := <-errors:
			if err == nil {
				global.log.Println("Finished")
				break Outer
			}

			// Return a status code indicating failure
			global.log.Println("Exiting due to error", err)
			os.Exit(1)
		}
	}
}

func SigStatus() {
	global.log.Println("There are", runtime.NumGoroutine(), "goroutines running")
}
