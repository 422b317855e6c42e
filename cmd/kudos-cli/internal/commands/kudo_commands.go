package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/MGTheTrain/kudos/internal/app"
	"github.com/MGTheTrain/kudos/internal/domain/kudos"
	"github.com/MGTheTrain/kudos/internal/infrastructure/persistence"
	"github.com/MGTheTrain/kudos/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// KudoCommandHandler encapsulates logic for sending and listing kudos via CLI.
type KudoCommandHandler struct {
	logger logger.Logger
}

func (commandHandler *KudoCommandHandler) kudoService(db *gorm.DB) (kudos.KudoService, error) {
	userRepo, err := persistence.NewGormUserRepository(db, commandHandler.logger)
	if err != nil {
		return nil, err
	}
	kudoRepo, err := persistence.NewGormKudoRepository(db, commandHandler.logger)
	if err != nil {
		return nil, err
	}
	return app.NewKudoService(kudoRepo, userRepo, commandHandler.logger)
}

// SendKudoCmd sends a kudo between two existing users
func (commandHandler *KudoCommandHandler) SendKudoCmd(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	from, _ := flags.GetString("from")
	to, _ := flags.GetString("to")
	message, _ := flags.GetString("message")
	background, _ := flags.GetString("background-color")
	text, _ := flags.GetString("text-color")
	emoji, _ := flags.GetString("emoji")

	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = persistence.CloseDB(db) }()

	svc, err := commandHandler.kudoService(db)
	if err != nil {
		return err
	}

	kudo, err := svc.Send(context.Background(), kudos.SendInput{
		AuthorID:    from,
		RecipientID: to,
		Message:     message,
		Style: kudos.KudoStyle{
			BackgroundColor: kudos.Color(background),
			TextColor:       kudos.Color(text),
			Emoji:           kudos.Emoji(emoji),
		},
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), kudo.ID)
	return err
}

// ListKudosCmd prints the feed of one recipient
func (commandHandler *KudoCommandHandler) ListKudosCmd(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	recipient, _ := flags.GetString("to")
	filter, _ := flags.GetString("filter")
	sortBy, _ := flags.GetString("sort")

	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = persistence.CloseDB(db) }()

	svc, err := commandHandler.kudoService(db)
	if err != nil {
		return err
	}

	query := kudos.NewKudoQuery()
	query.RecipientID = recipient
	query.Filter = filter
	query.SortBy = sortBy

	feed, err := svc.Feed(context.Background(), query)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FROM\tTO\tEMOJI\tMESSAGE")
	for _, k := range feed {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", k.Author.Profile.FullName(), k.Recipient.Profile.FullName(), k.Style.Emoji.Glyph(), k.Message)
	}
	return w.Flush()
}

// InitKudoCommands registers the kudos command group
func InitKudoCommands(rootCmd *cobra.Command, log logger.Logger) {
	handler := &KudoCommandHandler{logger: log}

	kudosCmd := &cobra.Command{
		Use:   "kudos",
		Short: "Send and list kudos",
	}

	sendKudoCmd := &cobra.Command{
		Use:   "send",
		Short: "Send a kudo from one user to another",
		RunE:  handler.SendKudoCmd,
	}
	sendKudoCmd.Flags().String("from", "", "ID of the author")
	sendKudoCmd.Flags().String("to", "", "ID of the recipient")
	sendKudoCmd.Flags().String("message", "", "Kudo message")
	sendKudoCmd.Flags().String("background-color", string(kudos.DefaultBackgroundColor), "Card background (RED, GREEN, YELLOW, BLUE, WHITE)")
	sendKudoCmd.Flags().String("text-color", string(kudos.DefaultTextColor), "Card text color")
	sendKudoCmd.Flags().String("emoji", string(kudos.DefaultEmoji), "Emoji (THUMBSUP, PARTY, HANDSUP)")
	for _, flag := range []string{"from", "to", "message"} {
		_ = sendKudoCmd.MarkFlagRequired(flag)
	}
	kudosCmd.AddCommand(sendKudoCmd)

	listKudosCmd := &cobra.Command{
		Use:   "list",
		Short: "List the kudos a user received",
		RunE:  handler.ListKudosCmd,
	}
	listKudosCmd.Flags().String("to", "", "ID of the recipient")
	listKudosCmd.Flags().String("filter", "", "Match message or sender name")
	listKudosCmd.Flags().String("sort", kudos.SortByDate, "Sort order (date, sender, emoji)")
	_ = listKudosCmd.MarkFlagRequired("to")
	kudosCmd.AddCommand(listKudosCmd)

	rootCmd.AddCommand(kudosCmd)
}
