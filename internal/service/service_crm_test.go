package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/inventory-keeper/internal/adapter"
	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/internal/mock"
	"github.com/MKhiriev/inventory-keeper/internal/store"
	"github.com/MKhiriev/inventory-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCRMSvc(t *testing.T) (CRMService, *mock.MockCRMCredentialRepository, *mock.MockCRMConnector) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCRMCredentialRepository(ctrl)
	connector := mock.NewMockCRMConnector(ctrl)
	return NewCRMService(repo, connector, logger.Nop()), repo, connector
}

var (
	aliceCredential = models.CRMCredential{
		UserID:       aliceID,
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		InstanceURL:  "https://na1.example.com",
	}
	leadContact = models.CRMContact{Name: "Ada Lovelace", Email: "ada@example.com", Company: "Acme"}
	errExpired  = fmt.Errorf("create account: %w: INVALID_SESSION_ID", adapter.ErrUnauthorized)
)

func TestCRMService_CreateContact_Success(t *testing.T) {
	svc, repo, connector := newTestCRMSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindCRMCredential(ctx, aliceID).Return(aliceCredential, nil)
	connector.EXPECT().CreateAccountAndContact(ctx, aliceCredential, leadContact, "").
		Return(models.CRMResult{AccountID: "001", ContactID: "003"}, nil)

	got, err := svc.CreateContact(ctx, alice, leadContact)
	require.NoError(t, err)
	assert.Equal(t, models.CRMResult{AccountID: "001", ContactID: "003"}, got)
}

func TestCRMService_CreateContact_RefreshesOnceAndRetries(t *testing.T) {
	svc, repo, connector := newTestCRMSvc(t)
	ctx := context.Background()

	refreshed := aliceCredential
	refreshed.AccessToken = "access-2"

	gomock.InOrder(
		repo.EXPECT().FindCRMCredential(ctx, aliceID).Return(aliceCredential, nil),
		connector.EXPECT().CreateAccountAndContact(ctx, aliceCredential, leadContact, "").Return(models.CRMResult{}, errExpired),
		connector.EXPECT().RefreshCredential(ctx, aliceCredential).Return(refreshed, nil),
		repo.EXPECT().SaveCRMCredential(ctx, refreshed).Return(refreshed, nil),
		connector.EXPECT().CreateAccountAndContact(ctx, refreshed, leadContact, "").
			Return(models.CRMResult{AccountID: "001", ContactID: "003"}, nil),
	)

	got, err := svc.CreateContact(ctx, alice, leadContact)
	require.NoError(t, err)
	assert.Equal(t, "003", got.ContactID)
}

func TestCRMService_CreateContact_SecondUnauthorizedIsNotRetried(t *testing.T) {
	svc, repo, connector := newTestCRMSvc(t)
	ctx := context.Background()

	refreshed := aliceCredential
	refreshed.AccessToken = "access-2"

	repo.EXPECT().FindCRMCredential(ctx, aliceID).Return(aliceCredential, nil)
	connector.EXPECT().CreateAccountAndContact(ctx, gomock.Any(), leadContact, "").Return(models.CRMResult{}, errExpired).Times(2)
	connector.EXPECT().RefreshCredential(ctx, aliceCredential).Return(refreshed, nil).Times(1)
	repo.EXPECT().SaveCRMCredential(ctx, refreshed).Return(refreshed, nil)

	_, err := svc.CreateContact(ctx, alice, leadContact)
	assert.ErrorIs(t, err, ErrCRMFailure)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestCRMService_CreateContact_RefreshFails(t *testing.T) {
	svc, repo, connector := newTestCRMSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindCRMCredential(ctx, aliceID).Return(aliceCredential, nil)
	connector.EXPECT().CreateAccountAndContact(ctx, aliceCredential, leadContact, "").Return(models.CRMResult{}, errExpired)
	connector.EXPECT().RefreshCredential(ctx, aliceCredential).Return(aliceCredential, adapter.ErrBadRequest)

	_, err := svc.CreateContact(ctx, alice, leadContact)
	assert.ErrorIs(t, err, ErrCRMFailure)
	assert.ErrorIs(t, err, adapter.ErrBadRequest)
}

func TestCRMService_CreateContact_OtherFailureSkipsRefresh(t *testing.T) {
	svc, repo, connector := newTestCRMSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindCRMCredential(ctx, aliceID).Return(aliceCredential, nil)
	connector.EXPECT().CreateAccountAndContact(ctx, aliceCredential, leadContact, "").
		Return(models.CRMResult{}, fmt.Errorf("create contact: %w: DUPLICATES_DETECTED", adapter.ErrBadRequest))

	_, err := svc.CreateContact(ctx, alice, leadContact)
	assert.ErrorIs(t, err, ErrCRMFailure)
	assert.Contains(t, err.Error(), "DUPLICATES_DETECTED")
}

func TestCRMService_CreateContact_ContactRejectedRetriesOnlyContact(t *testing.T) {
	svc, repo, connector := newTestCRMSvc(t)
	ctx := context.Background()

	refreshed := aliceCredential
	refreshed.AccessToken = "access-2"
	contactExpired := fmt.Errorf("create contact: %w: INVALID_SESSION_ID", adapter.ErrUnauthorized)

	gomock.InOrder(
		repo.EXPECT().FindCRMCredential(ctx, aliceID).Return(aliceCredential, nil),
		connector.EXPECT().CreateAccountAndContact(ctx, aliceCredential, leadContact, "").
			Return(models.CRMResult{AccountID: "001A"}, contactExpired),
		connector.EXPECT().RefreshCredential(ctx, aliceCredential).Return(refreshed, nil),
		repo.EXPECT().SaveCRMCredential(ctx, refreshed).Return(refreshed, nil),
		connector.EXPECT().CreateAccountAndContact(ctx, refreshed, leadContact, "001A").
			Return(models.CRMResult{AccountID: "001A", ContactID: "003"}, nil),
	)

	got, err := svc.CreateContact(ctx, alice, leadContact)
	require.NoError(t, err)
	assert.Equal(t, models.CRMResult{AccountID: "001A", ContactID: "003"}, got)
}

func TestCRMService_CreateContact_FailureKeepsAccountID(t *testing.T) {
	ctx := context.Background()
	contactExpired := fmt.Errorf("create contact: %w: INVALID_SESSION_ID", adapter.ErrUnauthorized)
	refreshed := aliceCredential
	refreshed.AccessToken = "access-2"

	t.Run("contact step fails without refresh", func(t *testing.T) {
		svc, repo, connector := newTestCRMSvc(t)
		repo.EXPECT().FindCRMCredential(ctx, aliceID).Return(aliceCredential, nil)
		connector.EXPECT().CreateAccountAndContact(ctx, aliceCredential, leadContact, "").
			Return(models.CRMResult{AccountID: "001A"}, fmt.Errorf("create contact: %w: DUPLICATES_DETECTED", adapter.ErrBadRequest))

		got, err := svc.CreateContact(ctx, alice, leadContact)
		assert.ErrorIs(t, err, ErrCRMFailure)
		assert.Equal(t, "001A", got.AccountID)
	})

	t.Run("refresh fails after account was created", func(t *testing.T) {
		svc, repo, connector := newTestCRMSvc(t)
		repo.EXPECT().FindCRMCredential(ctx, aliceID).Return(aliceCredential, nil)
		connector.EXPECT().CreateAccountAndContact(ctx, aliceCredential, leadContact, "").
			Return(models.CRMResult{AccountID: "001A"}, contactExpired)
		connector.EXPECT().RefreshCredential(ctx, aliceCredential).Return(aliceCredential, adapter.ErrBadRequest)

		got, err := svc.CreateContact(ctx, alice, leadContact)
		assert.ErrorIs(t, err, ErrCRMFailure)
		assert.Equal(t, "001A", got.AccountID)
	})

	t.Run("retried contact step fails again", func(t *testing.T) {
		svc, repo, connector := newTestCRMSvc(t)
		repo.EXPECT().FindCRMCredential(ctx, aliceID).Return(aliceCredential, nil)
		connector.EXPECT().CreateAccountAndContact(ctx, aliceCredential, leadContact, "").
			Return(models.CRMResult{AccountID: "001A"}, contactExpired)
		connector.EXPECT().RefreshCredential(ctx, aliceCredential).Return(refreshed, nil)
		repo.EXPECT().SaveCRMCredential(ctx, refreshed).Return(refreshed, nil)
		connector.EXPECT().CreateAccountAndContact(ctx, refreshed, leadContact, "001A").
			Return(models.CRMResult{}, contactExpired)

		got, err := svc.CreateContact(ctx, alice, leadContact)
		assert.ErrorIs(t, err, ErrCRMFailure)
		assert.ErrorIs(t, err, adapter.ErrUnauthorized)
		assert.Equal(t, "001A", got.AccountID)
	})
}

func TestCRMService_CreateContact_NotConfigured(t *testing.T) {
	svc, repo, _ := newTestCRMSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindCRMCredential(ctx, bobID).Return(models.CRMCredential{}, store.ErrCRMCredentialNotFound)

	_, err := svc.CreateContact(ctx, bob, leadContact)
	assert.ErrorIs(t, err, ErrCRMNotConfigured)
}

func TestCRMService_SaveCredential_BindsCaller(t *testing.T) {
	svc, repo, _ := newTestCRMSvc(t)
	ctx := context.Background()

	repo.EXPECT().SaveCRMCredential(ctx, models.CRMCredential{
		UserID:      aliceID,
		AccessToken: "access-9",
		InstanceURL: "https://na1.example.com",
	}).Return(models.CRMCredential{}, nil)

	err := svc.SaveCredential(ctx, alice, models.CRMCredential{
		UserID:      bobID,
		AccessToken: "access-9",
		InstanceURL: " https://na1.example.com/ ",
	})
	assert.NoError(t, err)
}

func TestCRMService_Health(t *testing.T) {
	svc, repo, _ := newTestCRMSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindCRMCredential(ctx, aliceID).Return(aliceCredential, nil)
	repo.EXPECT().FindCRMCredential(ctx, bobID).Return(models.CRMCredential{}, store.ErrCRMCredentialNotFound)

	got, err := svc.Health(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, models.CRMHealth{OK: true, HasToken: true}, got)

	got, err = svc.Health(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, models.CRMHealth{OK: true, HasToken: false}, got)
}
