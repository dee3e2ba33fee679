package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/juju/fslock"

	"github.com/btidor/ziptree/viewer"
)

var commit string = "dev"

const defaultConfigPath = "ziptree.toml"

func main() {
	configPath := defaultConfigPath
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	config, err := viewer.LoadConfig(configPath)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(config.Containers, 0755); err != nil {
		panic(err)
	}
	lock := fslock.New(filepath.Join(config.Containers, ".ziptree.lock"))
	if err := lock.LockWithTimeout(3 * time.Second); err != nil {
		fmt.Printf("Another ziptree process exists, exiting...\n")
		os.Exit(1)
	}

	if config.BucketVar != "" {
		bucket, err := viewer.OpenBucket(config.BucketVar)
		if err != nil {
			panic(err)
		}
		if err := bucket.Sync(config.Containers); err != nil {
			panic(err)
		}
	}

	srv := &viewer.Server{Config: config, Commit: commit}
	watcher, err := srv.Watch()
	if err != nil {
		panic(err)
	}
	defer watcher.Close()

	server := &http.Server{
		Addr:         config.Listen,
		Handler:      srv,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	fmt.Printf("Listening on %s\n", config.Listen)
	err = server.ListenAndServe()
	panic(err)
}

func init() {
	if len(commit) > 7 {
		commit = commit[:7]
	}
}
