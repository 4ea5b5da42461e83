package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"condo-cli/api"

	"github.com/spf13/cobra"
)

func announcementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "announcements",
		Short: "Manage resident announcements",
	}

	cmd.AddCommand(announcementsListCmd())
	cmd.AddCommand(announcementsPublishCmd())
	cmd.AddCommand(announcementsDeleteCmd())
	return cmd
}

func announcementsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List announcements",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireCredentials(); err != nil {
				return err
			}

			announcements, err := client.GetAnnouncements(context.Background())
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(announcements)
			}
			if len(announcements) == 0 {
				fmt.Println("No announcements found.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tPUBLISHED\tPRIORITY\tTITLE")
			for _, a := range announcements {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", a.ID, a.PublishedAt, a.Priority, a.Title)
			}
			return writer.Flush()
		},
	}
	return cmd
}

func announcementsPublishCmd() *cobra.Command {
	var title string
	var body string
	var priority string

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish an announcement",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" || body == "" {
				return fmt.Errorf("--title and --body are required")
			}
			if _, err := requireCredentials(); err != nil {
				return err
			}

			created, err := client.PublishAnnouncement(context.Background(), api.AnnouncementRequest{
				Title:    title,
				Body:     body,
				Priority: priority,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Published announcement %s.\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Announcement title")
	cmd.Flags().StringVar(&body, "body", "", "Announcement body")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (baja, normal, alta)")
	return cmd
}

func announcementsDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an announcement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if _, err := requireCredentials(); err != nil {
				return err
			}

			if err := client.DeleteAnnouncement(context.Background(), id); err != nil {
				return err
			}

			fmt.Printf("Deleted announcement %s.\n", id)
			return nil
		},
	}
	return cmd
}
