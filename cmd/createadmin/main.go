// Command createadmin bootstraps a superuser system manager so the first
// admin can log in and create the rest through the API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/BruksfildServices01/connect-marketplace/internal/audit"
	"github.com/BruksfildServices01/connect-marketplace/internal/auth"
	"github.com/BruksfildServices01/connect-marketplace/internal/config"
	dbpkg "github.com/BruksfildServices01/connect-marketplace/internal/db"
	"github.com/BruksfildServices01/connect-marketplace/internal/httperr"
	infraRepo "github.com/BruksfildServices01/connect-marketplace/internal/infra/repository"
	ucAccount "github.com/BruksfildServices01/connect-marketplace/internal/usecase/account"
)

func main() {
	email := flag.String("email", "", "admin email (required)")
	firstName := flag.String("first-name", "Admin", "first name")
	lastName := flag.String("last-name", "User", "last name")
	phone := flag.String("phone", "", "phone number, 10 to 15 digits (required)")
	flag.Parse()

	password := os.Getenv("ADMIN_PASSWORD")
	if *email == "" || *phone == "" || password == "" {
		fmt.Fprintln(os.Stderr, "usage: ADMIN_PASSWORD=... createadmin -email EMAIL -phone PHONE")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	db := dbpkg.NewDB(cfg)

	register := ucAccount.NewRegisterSystemManager(
		infraRepo.NewAccountGormRepository(db),
		auth.NewBcryptHasher(),
		audit.New(logger),
	)

	manager, err := register.Execute(context.Background(), nil, ucAccount.SystemManagerInput{
		RegistrationInput: ucAccount.RegistrationInput{
			FirstName:   *firstName,
			LastName:    *lastName,
			Email:       *email,
			Password:    password,
			PhoneNumber: *phone,
		},
		Superuser: true,
	})
	if err != nil {
		if verr, ok := httperr.AsValidation(err); ok {
			fields := make([]string, 0, len(verr.Fields))
			for field, msgs := range verr.Fields {
				fields = append(fields, fmt.Sprintf("%s: %s", field, strings.Join(msgs, " ")))
			}
			sort.Strings(fields)
			for _, line := range fields {
				fmt.Fprintln(os.Stderr, line)
			}
			os.Exit(1)
		}
		logger.Error("create admin failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("created superuser %s (id %d)\n", *email, manager.UserID)
}
