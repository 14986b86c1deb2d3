// Command adduser creates a user directly in the database.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ratnesh1929/Expense-Tracker/internal/auth"
	"github.com/ratnesh1929/Expense-Tracker/internal/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

var (
	errFieldsRequired = errors.New("-name and -email are required")
	errUserExists     = errors.New("a user with this email address already exists")
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()

	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	name := fs.String("name", "", "display name of the user")
	email := fs.String("email", "", "email address, used to log in")
	password := fs.String("password", "", "password, prompted for when empty")
	dbPath := fs.String("db", "data/gorm.db", "path to the SQLite database")
	cost := fs.Int("cost", 0, "bcrypt cost, 0 selects the default")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(*name) == "" || strings.TrimSpace(*email) == "" {
		fmt.Fprintln(stderr, errFieldsRequired)
		fs.Usage()
		return 2
	}

	if *password == "" {
		p, err := readPassword(stdin, stderr)
		if err != nil {
			log.Error().Err(err).Msg("Reading password")
			return 1
		}
		*password = p
	}

	if *password == "" {
		fmt.Fprintln(stderr, "password must not be empty")
		return 1
	}

	user, err := addUser(*dbPath, *name, *email, *password, *cost)
	if err != nil {
		log.Error().Err(err).Str("email", *email).Msg("Creating user")
		return 1
	}

	fmt.Fprintf(stdout, "created user %s (%s)\n", user.Email, user.ID)
	return 0
}

func addUser(dbPath, name, email, password string, cost int) (models.User, error) {
	err := os.MkdirAll(filepath.Dir(dbPath), os.ModePerm)
	if err != nil {
		return models.User{}, err
	}

	err = models.Connect(dbPath)
	if err != nil {
		return models.User{}, err
	}

	defer func() {
		if sqlDB, err := models.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	hash, err := auth.HashPassword(password, cost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	err = models.DB.Create(&user).Error
	if errors.Is(err, models.ErrEmailNotUnique) {
		return models.User{}, errUserExists
	} else if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// readPassword prompts for the password without echo on a terminal and
// reads a single line otherwise.
func readPassword(stdin io.Reader, prompt io.Writer) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
