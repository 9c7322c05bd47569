package commands

import (
	"fmt"
	"os/exec"
	"runtime"

	"medtour/internal/config"
	"medtour/internal/service"
	"medtour/internal/utils"

	"github.com/spf13/cobra"
)

func linkCmd() *cobra.Command {
	var (
		phone    string
		template string
		vars     map[string]string
		open     bool
	)

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Print a WhatsApp click-to-chat link",
		Example: `  medtourctl link --var service="knee replacement" --var provider="Apollo Chennai"
  medtourctl link --phone "+91 98765 43210" --template "Hi from {name}" --var name=Amina --open`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			dispatcher := service.NewContactDispatcher(cfg.Contact.WhatsAppPhone, cfg.Contact.WhatsAppTemplate)
			link := dispatcher.Link(dispatcher.Intent(phone, template), vars)
			fmt.Fprintln(cmd.OutOrStdout(), link)

			if open {
				dispatcher.Dispatch(service.OpenerFunc(openBrowser), link)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "recipient phone (default: WHATSAPP_PHONE)")
	cmd.Flags().StringVar(&template, "template", "", "message template with {placeholders} (default: WHATSAPP_TEMPLATE)")
	cmd.Flags().StringToStringVar(&vars, "var", nil, "placeholder value as key=value, repeatable")
	cmd.Flags().BoolVar(&open, "open", false, "open the link in the default browser")
	return cmd
}

// openBrowser starts the platform URL handler without waiting for it
func openBrowser(url string) {
	var c *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		c = exec.Command("open", url)
	case "windows":
		c = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		c = exec.Command("xdg-open", url)
	}
	if err := c.Start(); err != nil {
		utils.Log.WithError(err).Warn("could not open browser")
		return
	}
	go c.Wait()
}
