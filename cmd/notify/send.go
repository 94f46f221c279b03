package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/canada-ca/tracker-sub005/internal/domain"
	"github.com/canada-ca/tracker-sub005/internal/ioc"
	"github.com/canada-ca/tracker-sub005/internal/service/i18n"
	"github.com/canada-ca/tracker-sub005/internal/service/notify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type sendOptions struct {
	kind     string
	to       string
	name     string
	lang     string
	code     int
	url      string
	org      string
	template string
	userKey  string
}

func newSendCmd(root *rootOptions) *cobra.Command {
	opts := &sendOptions{}
	kinds := make([]string, 0, len(domain.Kinds()))
	for _, k := range domain.Kinds() {
		kinds = append(kinds, k.String())
	}

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send one notification",
		Example: `  notify send --kind auth_email --to jane@example.ca --name "Jane Doe" --code 123456
  notify send --kind verification_email --to jane@example.ca --lang french --url https://tracker.alpha.canada.ca/validate/abc`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !domain.Kind(opts.kind).IsValid() {
				return fmt.Errorf("--kind must be one of %s", strings.Join(kinds, ", "))
			}
			if opts.to == "" {
				return fmt.Errorf("--to is required")
			}

			cfg, err := ioc.LoadConfig(root.configPath, root.envFile)
			if err != nil {
				return err
			}
			app, err := ioc.InitApp(cfg, prometheus.DefaultRegisterer)
			if err != nil {
				return err
			}
			defer app.Close()

			if err = opts.dispatch(cmd.Context(), app.Dispatcher, app.Translator(opts.lang)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s sent to %s\n", opts.kind, opts.to)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.kind, "kind", "", "notification kind: "+strings.Join(kinds, ", "))
	f.StringVar(&opts.to, "to", "", "email address or E.164 phone number")
	f.StringVar(&opts.name, "name", "", "display name of the recipient")
	f.StringVar(&opts.lang, "lang", "english", "language preference: english, french or a language tag")
	f.IntVar(&opts.code, "code", 0, "authentication or verification code")
	f.StringVar(&opts.url, "url", "", "verification, password reset or create account link")
	f.StringVar(&opts.org, "org", "", "organization name for invites")
	f.StringVar(&opts.template, "template", "", "template id overriding the configured one")
	f.StringVar(&opts.userKey, "user-key", "cli", "user key reported in failure logs")
	return cmd
}

func (o *sendOptions) recipient() domain.Recipient {
	user := domain.Recipient{
		Key:           o.userKey,
		DisplayName:   o.name,
		PreferredLang: i18n.ParseLanguage(o.lang),
		TfaCode:       o.code,
	}
	if domain.Kind(o.kind).Channel() == domain.ChannelSMS {
		user.PhoneNumber = o.to
	} else {
		user.UserName = o.to
	}
	return user
}

func (o *sendOptions) dispatch(ctx context.Context, d notify.Dispatcher, tr i18n.Translator) error {
	user := o.recipient()
	switch domain.Kind(o.kind) {
	case domain.KindAuthEmail:
		return d.SendAuthEmail(ctx, tr, notify.AuthEmailRequest{User: user})
	case domain.KindAuthTextMsg:
		return d.SendAuthTextMsg(ctx, tr, notify.AuthTextMsgRequest{User: user, TemplateID: o.template})
	case domain.KindTfaTextMsg:
		return d.SendTfaTextMsg(ctx, tr, notify.TfaTextMsgRequest{User: user, PhoneNumber: o.to, TemplateID: o.template})
	case domain.KindVerificationEmail:
		return d.SendVerificationEmail(ctx, tr, notify.VerificationEmailRequest{User: user, VerifyURL: o.url, TemplateID: o.template})
	case domain.KindPasswordResetEmail:
		return d.SendPasswordResetEmail(ctx, tr, notify.PasswordResetEmailRequest{User: user, ResetURL: o.url, TemplateID: o.template})
	case domain.KindOrgInviteEmail:
		return d.SendOrgInviteEmail(ctx, tr, notify.OrgInviteEmailRequest{User: user, OrgName: o.org, TemplateID: o.template})
	case domain.KindOrgInviteCreateAccount:
		return d.SendOrgInviteCreateAccount(ctx, tr, notify.OrgInviteCreateAccountRequest{
			User:              user,
			OrgName:           o.org,
			CreateAccountLink: o.url,
			TemplateID:        o.template,
		})
	default:
		return fmt.Errorf("unknown kind %q", o.kind)
	}
}
