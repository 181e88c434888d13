package main

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/bionicotaku/lingo-utils-authx"
)

type issueOptions struct {
	subject       string
	email         string
	name          string
	surname       string
	chefProfileID string
	roles         []string
	ttl           time.Duration
}

func newIssueCommand(root *rootOptions) *cobra.Command {
	opts := &issueOptions{}
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Sign a token for the given identity and print it as an OAuth2 token response",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runIssue(cmd, root, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.subject, "sub", "", "User id (sub claim)")
	flags.StringVar(&opts.email, "email", "", "Email claim")
	flags.StringVar(&opts.name, "name", "", "Given name claim")
	flags.StringVar(&opts.surname, "surname", "", "Family name claim")
	flags.StringVar(&opts.chefProfileID, "chef-profile-id", "", "Chef profile id, omitted when empty")
	flags.StringSliceVar(&opts.roles, "role", []string{string(authx.RoleUser)}, "Role label, repeatable")
	flags.DurationVar(&opts.ttl, "ttl", 0, "Token lifetime (default AUTHX_TTL)")
	_ = cmd.MarkFlagRequired("sub")
	return cmd
}

func runIssue(cmd *cobra.Command, root *rootOptions, opts *issueOptions) error {
	secret, err := root.cfg.secret()
	if err != nil {
		return err
	}
	ttl := opts.ttl
	if ttl == 0 {
		ttl = root.cfg.TTL
	}
	if ttl <= 0 {
		return errors.New("ttl must be positive")
	}

	tok, err := authx.IssueOAuth2Token(authx.Profile{
		Subject:       opts.subject,
		Email:         opts.email,
		Name:          opts.name,
		Surname:       opts.surname,
		ChefProfileID: opts.chefProfileID,
		Roles:         authx.RolesFromStrings(opts.roles),
	}, authx.IssueConfig{
		Secret:   secret,
		TTL:      ttl,
		Issuer:   root.cfg.Issuer,
		Audience: root.cfg.Audience,
	})
	if err != nil {
		return err
	}

	for _, r := range opts.roles {
		if !authx.Role(r).IsWellKnown() {
			root.logger.Warn("issuing token with custom role", "role", r)
		}
	}
	root.logger.Info("token issued",
		"sub", opts.subject,
		"roles", opts.roles,
		"expires_at", tok.Expiry.Format(time.RFC3339),
	)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(tok)
}
