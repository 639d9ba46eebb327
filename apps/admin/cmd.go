package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/bahati/malezi/core/child"
	"github.com/bahati/malezi/core/course"
	"github.com/bahati/malezi/core/educator"
	"github.com/bahati/malezi/core/expense"
	"github.com/bahati/malezi/core/payment"
	"github.com/bahati/malezi/core/schedule"
	"github.com/bahati/malezi/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	usrSvc      *user.Service
	childSvc    *child.Service
	educatorSvc *educator.Service
	courseSvc   *course.Service
	paymentSvc  *payment.Service
	scheduleSvc *schedule.Service
	expenseSvc  *expense.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  adduser -username USERNAME -email EMAIL [-name NAME] [-admin] - create or update a user; the password is prompted next")
	fmt.Println("  seed - load a sample data set")
	fmt.Println("  list -entity children|educators|courses|payments [-search TERM] - print records")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ExitOnError)
	addUserName := addUserCmd.String("name", "", "The user's full name.")
	addUserUname := addUserCmd.String("username", "", "The user's username. The password will be prompted next.")
	addUserEmail := addUserCmd.String("email", "", "The user's email.")
	addUserAdmin := addUserCmd.Bool("admin", false, "Grant all roles.")

	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	listEntity := listCmd.String("entity", "", "One of: children, educators, courses, payments.")
	listSearch := listCmd.String("search", "", "Case-insensitive substring filter.")

	switch args[1] {
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserUname == "" || *addUserEmail == "" {
			addUserCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			addUserCmd.Usage()
			return errHelp
		}
		return cli.addUser(*addUserName, *addUserUname, *addUserEmail, string(pwd), *addUserAdmin)
	case "seed":
		return cli.seed()
	case "list":
		if err := listCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *listEntity == "" {
			listCmd.Usage()
			return errHelp
		}
		return cli.list(*listEntity, *listSearch)
	default:
		cli.printUsage()
		return errHelp
	}
}
