package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/inventory-keeper/internal/config"
	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/internal/utils"
	"github.com/MKhiriev/inventory-keeper/models"
)

const defaultLastName = "Unknown"

type salesforceConnector struct {
	client *utils.HTTPClient

	loginURL     string
	clientID     string
	clientSecret string
	apiVersion   string

	logger *logger.Logger
}

// sobjectResult is the body returned by the sobject create endpoint.
type sobjectResult struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
}

// tokenResponse is the body returned by the refresh_token grant.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	InstanceURL  string `json:"instance_url"`
}

// NewSalesforceConnector constructs a resty-backed [CRMConnector] for the
// Salesforce REST API. cfg.LoginURL is normalised and validated; the request
// timeout bounds every outbound call.
func NewSalesforceConnector(cfg config.CRM, log *logger.Logger) (CRMConnector, error) {
	loginURL, err := normalizeBaseURL(cfg.LoginURL)
	if err != nil {
		return nil, fmt.Errorf("invalid crm login url: %w", err)
	}

	version := strings.TrimSpace(cfg.APIVersion)
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}

	return &salesforceConnector{
		client:       utils.NewHTTPClient(cfg.RequestTimeout),
		loginURL:     loginURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		apiVersion:   version,
		logger:       log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateAccountAndContact implements [CRMConnector].
func (s *salesforceConnector) CreateAccountAndContact(ctx context.Context, cred models.CRMCredential, contact models.CRMContact, accountID string) (models.CRMResult, error) {
	base, err := normalizeBaseURL(cred.InstanceURL)
	if err != nil {
		return models.CRMResult{AccountID: accountID}, fmt.Errorf("%w: %w", ErrMissingInstanceURL, err)
	}

	if accountID == "" {
		accountID, err = s.createSObject(ctx, base, cred.AccessToken, "Account", map[string]string{
			"Name": contact.Company,
		})
		if err != nil {
			return models.CRMResult{}, fmt.Errorf("create account: %w", err)
		}
	}

	firstName, lastName := splitName(contact.Name)
	contactID, err := s.createSObject(ctx, base, cred.AccessToken, "Contact", map[string]string{
		"FirstName":   firstName,
		"LastName":    lastName,
		"Email":       contact.Email,
		"Phone":       contact.Phone,
		"Title":       contact.JobTitle,
		"Description": contact.Notes,
		"AccountId":   accountID,
	})
	if err != nil {
		return models.CRMResult{AccountID: accountID}, fmt.Errorf("create contact: %w", err)
	}

	s.logger.Debug().
		Str("func", "salesforceConnector.CreateAccountAndContact").
		Str("account_id", accountID).
		Str("contact_id", contactID).
		Msg("crm records created")

	return models.CRMResult{AccountID: accountID, ContactID: contactID}, nil
}

// RefreshCredential implements [CRMConnector].
func (s *salesforceConnector) RefreshCredential(ctx context.Context, cred models.CRMCredential) (models.CRMCredential, error) {
	if strings.TrimSpace(cred.RefreshToken) == "" {
		return cred, ErrMissingRefreshToken
	}

	form := map[string]string{
		"grant_type":    "refresh_token",
		"refresh_token": cred.RefreshToken,
		"client_id":     s.clientID,
	}
	if s.clientSecret != "" {
		form["client_secret"] = s.clientSecret
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(form).
		Post(s.loginURL + "/services/oauth2/token")
	if err != nil {
		return cred, fmt.Errorf("refresh token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return cred, err
	}

	var token tokenResponse
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		return cred, fmt.Errorf("%w: decode token response: %w", ErrBadGateway, err)
	}
	if token.AccessToken == "" {
		return cred, fmt.Errorf("%w: empty access token", ErrBadGateway)
	}

	refreshed := cred
	refreshed.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		refreshed.RefreshToken = token.RefreshToken
	}
	if token.InstanceURL != "" {
		refreshed.InstanceURL = token.InstanceURL
	}
	refreshed.UpdatedAt = time.Now().UTC()

	return refreshed, nil
}

func (s *salesforceConnector) createSObject(ctx context.Context, baseURL, accessToken, object string, fields map[string]string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetHeader("Content-Type", "application/json").
		SetBody(fields).
		Post(fmt.Sprintf("%s/services/data/%s/sobjects/%s", baseURL, s.apiVersion, object))
	if err != nil {
		return "", fmt.Errorf("%s request: %w", strings.ToLower(object), err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var result sobjectResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("decode %s response: %w", strings.ToLower(object), err)
	}
	if result.ID == "" {
		return "", ErrMissingRecordID
	}

	return result.ID, nil
}

// splitName puts the first word into FirstName and the rest into LastName.
func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", defaultLastName
	case 1:
		return parts[0], defaultLastName
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
