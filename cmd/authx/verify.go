package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bionicotaku/lingo-utils-authx"
)

type verifyOptions struct {
	header      string
	token       string
	requestID   string
	owner       string
	roles       []string
	anyRoles    []string
	requireChef bool
}

type verifyOutput struct {
	RequestID     string   `json:"request_id"`
	UserID        string   `json:"user_id"`
	Email         string   `json:"email"`
	Name          string   `json:"name"`
	Surname       string   `json:"surname"`
	ChefProfileID string   `json:"chef_profile_id,omitempty"`
	Roles         []string `json:"roles"`
	Issuer        string   `json:"issuer,omitempty"`
	Audience      []string `json:"audience,omitempty"`
	IssuedAt      string   `json:"issued_at"`
	ExpiresAt     string   `json:"expires_at"`
}

func newVerifyCommand(root *rootOptions) *cobra.Command {
	opts := &verifyOptions{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a bearer credential and evaluate authorization guards",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd, root, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.header, "header", "", `Authorization header value, e.g. "Bearer <token>"`)
	flags.StringVar(&opts.token, "token", "", "Raw token, used when --header is empty")
	flags.StringVar(&opts.requestID, "request-id", "", "Request correlation id (random when empty)")
	flags.StringVar(&opts.owner, "owner", "", "Require the caller to own a resource with this owner id")
	flags.StringSliceVar(&opts.roles, "require-role", nil, "Require every listed role")
	flags.StringSliceVar(&opts.anyRoles, "require-any-role", nil, "Require at least one listed role")
	flags.BoolVar(&opts.requireChef, "require-chef-profile", false, "Require a chef profile")
	return cmd
}

func runVerify(cmd *cobra.Command, root *rootOptions, opts *verifyOptions) error {
	secret, err := root.cfg.secret()
	if err != nil {
		return err
	}

	token := opts.token
	if opts.header != "" {
		var ok bool
		if token, ok = authx.ExtractBearerToken(opts.header); !ok {
			return errors.New("no bearer token in header")
		}
	}
	if token == "" {
		return errors.New("either --header or --token is required")
	}

	requestID := opts.requestID
	if requestID == "" {
		requestID = uuid.NewString()
	}
	logger := root.logger.With("request_id", requestID)

	claims, err := authx.VerifyToken(token, authx.VerifyConfig{
		Secret:   secret,
		Issuer:   root.cfg.Issuer,
		Audience: root.cfg.Audience,
	})
	if err != nil {
		logger.Warn("token rejected", "code", authx.CodeOf(err), "error", err)
		return err
	}
	id := authx.NewIdentity(claims, requestID)

	if denied := evaluateGuards(id, opts); len(denied) > 0 {
		logger.Warn("access denied", "sub", id.UserID, "failed_guards", denied)
		return fmt.Errorf("access denied: %v", denied)
	}
	logger.Info("token verified", "sub", id.UserID, "roles", id.Roles)

	out := verifyOutput{
		RequestID:     id.RequestID,
		UserID:        id.UserID,
		Email:         id.Email,
		Name:          id.Name,
		Surname:       id.Surname,
		ChefProfileID: id.ChefProfileID,
		Roles:         make([]string, 0, len(id.Roles)),
		Issuer:        claims.Issuer,
		Audience:      claims.Audience,
		IssuedAt:      claims.IssuedAt.Format(time.RFC3339),
		ExpiresAt:     claims.ExpiresAt.Format(time.RFC3339),
	}
	for _, r := range id.Roles {
		out.Roles = append(out.Roles, string(r))
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// evaluateGuards returns the names of the requested guards the identity fails.
func evaluateGuards(id authx.Identity, opts *verifyOptions) []string {
	var denied []string
	if opts.requireChef && !id.HasChefProfile() {
		denied = append(denied, "chef-profile")
	}
	if opts.owner != "" && !id.OwnsResource(opts.owner) {
		denied = append(denied, "owner")
	}
	for _, r := range opts.roles {
		if !id.HasRole(authx.Role(r)) {
			denied = append(denied, "role:"+r)
		}
	}
	if len(opts.anyRoles) > 0 && !id.HasAnyRole(authx.RolesFromStrings(opts.anyRoles)...) {
		denied = append(denied, "any-role")
	}
	return denied
}
