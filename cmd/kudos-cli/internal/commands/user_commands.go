package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/MGTheTrain/kudos/internal/app"
	"github.com/MGTheTrain/kudos/internal/domain/users"
	"github.com/MGTheTrain/kudos/internal/infrastructure/auth"
	"github.com/MGTheTrain/kudos/internal/infrastructure/persistence"
	"github.com/MGTheTrain/kudos/internal/pkg/logger"
	"github.com/MGTheTrain/kudos/internal/pkg/validators"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// UserCommandHandler encapsulates logic for managing users via CLI.
type UserCommandHandler struct {
	logger logger.Logger
}

// CreateUserCmd registers a user from the command flags
func (commandHandler *UserCommandHandler) CreateUserCmd(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	email, _ := flags.GetString("email")
	password, _ := flags.GetString("password")
	firstName, _ := flags.GetString("first-name")
	lastName, _ := flags.GetString("last-name")
	department, _ := flags.GetString("department")

	fieldErrors := validators.FieldErrors{}
	fieldErrors.Add("email", validators.ValidateEmail(email))
	fieldErrors.Add("password", validators.ValidatePassword(password))
	fieldErrors.Add("first-name", validators.ValidateName(firstName))
	fieldErrors.Add("last-name", validators.ValidateName(lastName))
	if fieldErrors.Any() {
		return fmt.Errorf("invalid user: %v", map[string]string(fieldErrors))
	}

	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = persistence.CloseDB(db) }()

	userRepo, err := persistence.NewGormUserRepository(db, commandHandler.logger)
	if err != nil {
		return err
	}

	authService, err := app.NewAuthService(userRepo, auth.NewBcryptPasswordHasher(bcrypt.DefaultCost), commandHandler.logger)
	if err != nil {
		return err
	}

	ctx := context.Background()
	user, err := authService.Register(ctx, users.RegisterInput{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		return err
	}

	if department != "" && users.Department(department) != user.Profile.Department {
		userService, err := app.NewUserService(userRepo, commandHandler.logger)
		if err != nil {
			return err
		}
		if user, err = userService.UpdateProfile(ctx, user.ID, users.ProfileUpdate{
			FirstName:  user.Profile.FirstName,
			LastName:   user.Profile.LastName,
			Department: users.Department(department),
		}); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), user.ID)
	return err
}

// ListUsersCmd prints every user as a table
func (commandHandler *UserCommandHandler) ListUsersCmd(cmd *cobra.Command, _ []string) error {
	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = persistence.CloseDB(db) }()

	userRepo, err := persistence.NewGormUserRepository(db, commandHandler.logger)
	if err != nil {
		return err
	}

	list, err := userRepo.List(context.Background(), &users.UserQuery{})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tNAME\tDEPARTMENT")
	for _, u := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Email, u.Profile.FullName(), u.Profile.Department.Label())
	}
	return w.Flush()
}

// InitUserCommands registers the users command group
func InitUserCommands(rootCmd *cobra.Command, log logger.Logger) {
	handler := &UserCommandHandler{logger: log}

	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}

	createUserCmd := &cobra.Command{
		Use:   "create",
		Short: "Register a user",
		RunE:  handler.CreateUserCmd,
	}
	createUserCmd.Flags().String("email", "", "Email address used to sign in")
	createUserCmd.Flags().String("password", "", "Password, at least 5 characters")
	createUserCmd.Flags().String("first-name", "", "First name")
	createUserCmd.Flags().String("last-name", "", "Last name")
	createUserCmd.Flags().String("department", "", "Department (MARKETING, SALES, ENGINEERING, HR)")
	for _, flag := range []string{"email", "password", "first-name", "last-name"} {
		_ = createUserCmd.MarkFlagRequired(flag)
	}
	usersCmd.AddCommand(createUserCmd)

	listUsersCmd := &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE:  handler.ListUsersCmd,
	}
	usersCmd.AddCommand(listUsersCmd)

	rootCmd.AddCommand(usersCmd)
}
