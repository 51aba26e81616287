package main

import (
	"log"
	"os"
)

func main() {
	cfg, err := ParseConfig(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	cfg.ApplyLogging()

	var journal Recorder
	if cfg.JournalPath != "" {
		j, err := OpenJournal(cfg.JournalPath)
		if err != nil {
			log.Fatal(err)
		}
		defer j.Close()
		journal = j
	}

	log.Println("Starting stackqueue")
	sh := NewShell(os.Stdin, os.Stdout, journal, cfg.Color)
	if err := sh.Run(); err != nil {
		log.Println("ERROR:", err)
	}
}
