package main

import (
	"log"
	"os"

	"github.com/hopenndrive/admin/core"
	"github.com/hopenndrive/admin/core/user"
	emailsvc "github.com/hopenndrive/admin/services/email"
	inmemdb "github.com/hopenndrive/admin/storage/inmem"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	// set up DB
	db, err := inmemdb.Open()
	errAndDie(err)

	usrSvc := user.NewService(conf, inmemdb.NewUserRepository(db), emailsvc.NewConsoleService(conf))

	// start CLI
	cli := commandLine{usrSvc: usrSvc}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
