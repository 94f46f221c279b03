package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/canada-ca/tracker-sub005/internal/domain"
	"github.com/canada-ca/tracker-sub005/internal/errs"
	"github.com/canada-ca/tracker-sub005/internal/pkg/logger"
	"github.com/canada-ca/tracker-sub005/internal/service/i18n"
	i18nmocks "github.com/canada-ca/tracker-sub005/internal/service/i18n/mocks"
	"github.com/canada-ca/tracker-sub005/internal/service/provider"
	providermocks "github.com/canada-ca/tracker-sub005/internal/service/provider/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var testTemplates = Templates{
	AuthEmail:                DefaultAuthEmailTemplateID,
	AuthTextMsg:              "auth-text",
	TfaTextMsg:               "tfa-text",
	VerificationEmailEN:      "verify-en",
	VerificationEmailFR:      "verify-fr",
	PasswordResetEN:          "reset-en",
	PasswordResetFR:          "reset-fr",
	OrgInvite:                "invite",
	OrgInviteCreateAccountEN: "invite-create-en",
	OrgInviteCreateAccountFR: "invite-create-fr",
}

func testUser(lang domain.Language) domain.Recipient {
	return domain.Recipient{
		Key:           "user-key-1",
		UserName:      "test.email@email.ca",
		DisplayName:   "Test Account",
		PhoneNumber:   "+15555550100",
		PreferredLang: lang,
		TfaCode:       123456,
	}
}

// dispatchCase describes one operation: how to call it and what client call
// it must produce.
type dispatchCase struct {
	name    string
	channel domain.Channel
	key     domain.MessageKey
	logDesc string
	call    func(d Dispatcher, tr i18n.Translator, user domain.Recipient) error

	wantTemplate        string
	wantAddress         string
	wantPersonalisation map[string]any
}

func dispatchCases() []dispatchCase {
	return []dispatchCase{
		{
			name:    "auth email",
			channel: domain.ChannelEmail,
			key:     domain.MsgUnableToAuthenticate,
			logDesc: "authentication code via email",
			call: func(d Dispatcher, tr i18n.Translator, user domain.Recipient) error {
				return d.SendAuthEmail(context.Background(), tr, AuthEmailRequest{User: user})
			},
			wantTemplate:        "a517d99f-ddb2-4494-87e1-d5ae6ca53090",
			wantAddress:         "test.email@email.ca",
			wantPersonalisation: map[string]any{"user": "Test Account", "tfa_code": 123456},
		},
		{
			name:    "auth text message",
			channel: domain.ChannelSMS,
			key:     domain.MsgUnableToAuthenticate,
			logDesc: "authentication code via text",
			call: func(d Dispatcher, tr i18n.Translator, user domain.Recipient) error {
				return d.SendAuthTextMsg(context.Background(), tr, AuthTextMsgRequest{User: user})
			},
			wantTemplate:        "auth-text",
			wantAddress:         "+15555550100",
			wantPersonalisation: map[string]any{"tfa_code": 123456},
		},
		{
			name:    "tfa text message",
			channel: domain.ChannelSMS,
			key:     domain.MsgUnableToSendTfaText,
			logDesc: "two factor authentication message",
			call: func(d Dispatcher, tr i18n.Translator, user domain.Recipient) error {
				return d.SendTfaTextMsg(context.Background(), tr, TfaTextMsgRequest{
					User:        user,
					PhoneNumber: "+15555550199",
					TemplateID:  "caller-tfa",
				})
			},
			wantTemplate:        "caller-tfa",
			wantAddress:         "+15555550199",
			wantPersonalisation: map[string]any{"verify_code": 123456},
		},
		{
			name:    "verification email",
			channel: domain.ChannelEmail,
			key:     domain.MsgUnableToSendVerification,
			logDesc: "verification email",
			call: func(d Dispatcher, tr i18n.Translator, user domain.Recipient) error {
				return d.SendVerificationEmail(context.Background(), tr, VerificationEmailRequest{
					User:      user,
					VerifyURL: "https://tracker.alpha.canada.ca/validate/token",
				})
			},
			wantTemplate: "verify-en",
			wantAddress:  "test.email@email.ca",
			wantPersonalisation: map[string]any{
				"user":             "Test Account",
				"verify_email_url": "https://tracker.alpha.canada.ca/validate/token",
			},
		},
		{
			name:    "password reset email",
			channel: domain.ChannelEmail,
			key:     domain.MsgUnableToSendReset,
			logDesc: "password reset email",
			call: func(d Dispatcher, tr i18n.Translator, user domain.Recipient) error {
				return d.SendPasswordResetEmail(context.Background(), tr, PasswordResetEmailRequest{
					User:     user,
					ResetURL: "https://tracker.alpha.canada.ca/reset-password/token",
				})
			},
			wantTemplate: "reset-en",
			wantAddress:  "test.email@email.ca",
			wantPersonalisation: map[string]any{
				"user":               "Test Account",
				"password_reset_url": "https://tracker.alpha.canada.ca/reset-password/token",
			},
		},
		{
			name:    "org invite email",
			channel: domain.ChannelEmail,
			key:     domain.MsgUnableToSendOrgInvite,
			logDesc: "org invite email",
			call: func(d Dispatcher, tr i18n.Translator, user domain.Recipient) error {
				return d.SendOrgInviteEmail(context.Background(), tr, OrgInviteEmailRequest{
					User:       user,
					OrgName:    "Treasury Board Secretariat",
					TemplateID: "caller-invite",
				})
			},
			wantTemplate: "caller-invite",
			wantAddress:  "test.email@email.ca",
			wantPersonalisation: map[string]any{
				"display_name":      "Test Account",
				"organization_name": "Treasury Board Secretariat",
			},
		},
		{
			name:    "org invite create account email",
			channel: domain.ChannelEmail,
			key:     domain.MsgUnableToSendOrgInvite,
			logDesc: "org invite create account email",
			call: func(d Dispatcher, tr i18n.Translator, user domain.Recipient) error {
				return d.SendOrgInviteCreateAccount(context.Background(), tr, OrgInviteCreateAccountRequest{
					User:              user,
					OrgName:           "Treasury Board Secretariat",
					CreateAccountLink: "https://tracker.alpha.canada.ca/create-user/token",
				})
			},
			wantTemplate: "invite-create-en",
			wantAddress:  "test.email@email.ca",
			wantPersonalisation: map[string]any{
				"create_account_link": "https://tracker.alpha.canada.ca/create-user/token",
				"display_name":        "Test Account",
				"organization_name":   "Treasury Board Secretariat",
			},
		},
	}
}

func expectSend(m *providermocks.MockClient, channel domain.Channel, templateID, address any, opts any) *gomock.Call {
	if channel == domain.ChannelSMS {
		return m.EXPECT().SendSMS(gomock.Any(), templateID, address, opts)
	}
	return m.EXPECT().SendEmail(gomock.Any(), templateID, address, opts)
}

type DispatcherTestSuite struct {
	suite.Suite
	bundle *i18n.Bundle
}

func TestDispatcherTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(DispatcherTestSuite))
}

func (s *DispatcherTestSuite) SetupSuite() {
	b, err := i18n.NewBundle()
	s.Require().NoError(err)
	s.bundle = b
}

func (s *DispatcherTestSuite) newDispatcher(client provider.Client) (Dispatcher, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewDispatcher(client, testTemplates, logger.FromCore(core)), logs
}

func (s *DispatcherTestSuite) TestSend_Succeeds() {
	for _, tc := range dispatchCases() {
		s.Run(tc.name, func() {
			ctrl := gomock.NewController(s.T())
			client := providermocks.NewMockClient(ctrl)
			expectSend(client, tc.channel, tc.wantTemplate, tc.wantAddress,
				provider.SendOptions{Personalisation: tc.wantPersonalisation}).
				Return(domain.Receipt{ID: "n-1", Status: domain.SendStatusSucceeded}, nil).
				Times(1)

			d, logs := s.newDispatcher(client)
			err := tc.call(d, s.bundle.For(domain.LanguageEnglish), testUser(domain.LanguageEnglish))
			s.NoError(err)
			s.Zero(logs.Len())
		})
	}
}

func (s *DispatcherTestSuite) TestSend_FailureIsLocalized() {
	for _, tc := range dispatchCases() {
		for _, lang := range []domain.Language{domain.LanguageEnglish, domain.LanguageFrench} {
			s.Run(fmt.Sprintf("%s/%s", tc.name, lang), func() {
				ctrl := gomock.NewController(s.T())
				client := providermocks.NewMockClient(ctrl)
				cause := errors.New("Notification error occurred.")
				expectSend(client, tc.channel, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Receipt{}, cause).
					Times(1)

				tr := s.bundle.For(lang)
				d, logs := s.newDispatcher(client)
				err := tc.call(d, tr, testUser(lang))
				s.Require().Error(err)
				s.Equal(tr.T(tc.key), err.Error())
				s.ErrorIs(err, errs.ErrNotificationDeliveryFailed)
				s.NotErrorIs(err, cause)
				s.NotContains(err.Error(), cause.Error())

				var de *errs.DeliveryError
				s.Require().ErrorAs(err, &de)
				s.Equal(errs.KindNotificationDeliveryFailed, de.Kind)

				entries := logs.All()
				s.Require().Len(entries, 1)
				s.Equal(zapcore.ErrorLevel, entries[0].Level)
				s.Equal(fmt.Sprintf("Error occurred when sending %s for user-key-1: Notification error occurred.", tc.logDesc),
					entries[0].Message)
				s.Equal("user-key-1", entries[0].ContextMap()["user_key"])
			})
		}
	}
}

func (s *DispatcherTestSuite) TestSend_FailureShapeIsStable() {
	for _, tc := range dispatchCases() {
		s.Run(tc.name, func() {
			ctrl := gomock.NewController(s.T())
			client := providermocks.NewMockClient(ctrl)
			gomock.InOrder(
				expectSend(client, tc.channel, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Receipt{}, errors.New("503 Service Unavailable")),
				expectSend(client, tc.channel, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Receipt{}, errors.New("dial tcp: i/o timeout")),
			)

			tr := s.bundle.For(domain.LanguageEnglish)
			d, logs := s.newDispatcher(client)
			first := tc.call(d, tr, testUser(domain.LanguageEnglish))
			second := tc.call(d, tr, testUser(domain.LanguageEnglish))
			s.Equal(first, second)
			s.Equal(2, logs.Len())
		})
	}
}

func (s *DispatcherTestSuite) TestSend_UsesTranslator() {
	ctrl := gomock.NewController(s.T())
	client := providermocks.NewMockClient(ctrl)
	client.EXPECT().SendEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Receipt{}, errors.New("boom"))
	tr := i18nmocks.NewMockTranslator(ctrl)
	tr.EXPECT().T(domain.MsgUnableToSendReset).Return("translated")

	d, _ := s.newDispatcher(client)
	err := d.SendPasswordResetEmail(context.Background(), tr, PasswordResetEmailRequest{User: testUser(domain.LanguageEnglish)})
	s.EqualError(err, "translated")
}

func TestDispatcher_AuthEmailScenario(t *testing.T) {
	t.Parallel()

	user := domain.Recipient{
		Key:         "22222",
		UserName:    "test.email@email.ca",
		DisplayName: "Test Account",
		TfaCode:     123456,
	}

	testCases := []struct {
		name       string
		setupMocks func(ctrl *gomock.Controller) provider.Client

		assertFunc assert.ErrorAssertionFunc
		wantErr    string
		wantLog    string
	}{
		{
			name: "client resolves",
			setupMocks: func(ctrl *gomock.Controller) provider.Client {
				m := providermocks.NewMockClient(ctrl)
				m.EXPECT().SendEmail(gomock.Any(),
					"a517d99f-ddb2-4494-87e1-d5ae6ca53090",
					"test.email@email.ca",
					provider.SendOptions{Personalisation: map[string]any{"user": "Test Account", "tfa_code": 123456}},
				).Return(domain.Receipt{}, nil)
				return m
			},
			assertFunc: assert.NoError,
		},
		{
			name: "client rejects",
			setupMocks: func(ctrl *gomock.Controller) provider.Client {
				m := providermocks.NewMockClient(ctrl)
				m.EXPECT().SendEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Receipt{}, errors.New("Error: Notification error occurred."))
				return m
			},
			assertFunc: assert.Error,
			wantErr:    "Unable to authenticate. Please try again.",
			// The upstream wording was "Error ocurred ..."; the typo is fixed here.
			wantLog:    "Error occurred when sending authentication code via email for 22222: Error: Notification error occurred.",
		},
	}

	bundle, err := i18n.NewBundle()
	require.NoError(t, err)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			core, logs := observer.New(zapcore.ErrorLevel)
			d := NewDispatcher(tc.setupMocks(ctrl), DefaultTemplates(), logger.FromCore(core))

			err := d.SendAuthEmail(context.Background(), bundle.For(domain.LanguageEnglish), AuthEmailRequest{User: user})
			tc.assertFunc(t, err)
			if err != nil {
				assert.EqualError(t, err, tc.wantErr)
			}
			if tc.wantLog == "" {
				assert.Zero(t, logs.Len())
				return
			}
			require.Equal(t, 1, logs.Len())
			assert.Equal(t, tc.wantLog, logs.All()[0].Message)
		})
	}
}

func TestDispatcher_LanguageSelection(t *testing.T) {
	t.Parallel()

	type call struct {
		templateID string
		opts       provider.SendOptions
	}

	testCases := []struct {
		name   string
		invoke func(d Dispatcher, user domain.Recipient) error
		wantEN string
		wantFR string
	}{
		{
			name: "verification email",
			invoke: func(d Dispatcher, user domain.Recipient) error {
				return d.SendVerificationEmail(context.Background(), nil, VerificationEmailRequest{User: user, VerifyURL: "https://x/verify"})
			},
			wantEN: "verify-en",
			wantFR: "verify-fr",
		},
		{
			name: "password reset email",
			invoke: func(d Dispatcher, user domain.Recipient) error {
				return d.SendPasswordResetEmail(context.Background(), nil, PasswordResetEmailRequest{User: user, ResetURL: "https://x/reset"})
			},
			wantEN: "reset-en",
			wantFR: "reset-fr",
		},
		{
			name: "org invite create account",
			invoke: func(d Dispatcher, user domain.Recipient) error {
				return d.SendOrgInviteCreateAccount(context.Background(), nil, OrgInviteCreateAccountRequest{
					User: user, OrgName: "Org", CreateAccountLink: "https://x/create",
				})
			},
			wantEN: "invite-create-en",
			wantFR: "invite-create-fr",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			client := providermocks.NewMockClient(ctrl)
			var calls []call
			client.EXPECT().SendEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, templateID, _ string, opts provider.SendOptions) (domain.Receipt, error) {
					calls = append(calls, call{templateID: templateID, opts: opts})
					return domain.Receipt{}, nil
				}).Times(4)

			d := NewDispatcher(client, testTemplates, logger.Nop())
			for _, lang := range []domain.Language{domain.LanguageEnglish, domain.LanguageFrench, "", "spanish"} {
				require.NoError(t, tc.invoke(d, testUser(lang)))
			}

			require.Len(t, calls, 4)
			assert.Equal(t, tc.wantEN, calls[0].templateID)
			assert.Equal(t, tc.wantFR, calls[1].templateID)
			assert.Equal(t, tc.wantEN, calls[2].templateID)
			assert.Equal(t, tc.wantEN, calls[3].templateID)
			assert.Equal(t, calls[0].opts, calls[1].opts)
		})
	}
}

func TestDispatcher_CallerTemplateWins(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := providermocks.NewMockClient(ctrl)
	client.EXPECT().SendEmail(gomock.Any(), "caller-verify", gomock.Any(), gomock.Any()).Return(domain.Receipt{}, nil)
	client.EXPECT().SendEmail(gomock.Any(), "caller-reset", gomock.Any(), gomock.Any()).Return(domain.Receipt{}, nil)
	client.EXPECT().SendEmail(gomock.Any(), "caller-create", gomock.Any(), gomock.Any()).Return(domain.Receipt{}, nil)
	client.EXPECT().SendSMS(gomock.Any(), "caller-auth", gomock.Any(), gomock.Any()).Return(domain.Receipt{}, nil)

	d := NewDispatcher(client, testTemplates, logger.Nop())
	french := testUser(domain.LanguageFrench)
	ctx := context.Background()
	require.NoError(t, d.SendVerificationEmail(ctx, nil, VerificationEmailRequest{User: french, TemplateID: "caller-verify"}))
	require.NoError(t, d.SendPasswordResetEmail(ctx, nil, PasswordResetEmailRequest{User: french, TemplateID: "caller-reset"}))
	require.NoError(t, d.SendOrgInviteCreateAccount(ctx, nil, OrgInviteCreateAccountRequest{User: french, TemplateID: "caller-create"}))
	require.NoError(t, d.SendAuthTextMsg(ctx, nil, AuthTextMsgRequest{User: french, TemplateID: "caller-auth"}))
}

func TestDispatcher_MissingFieldsAreNotDefaulted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := providermocks.NewMockClient(ctrl)
	client.EXPECT().SendEmail(gomock.Any(), "", "", provider.SendOptions{
		Personalisation: map[string]any{"user": "", "verify_email_url": ""},
	}).Return(domain.Receipt{}, fmt.Errorf("%w: TemplateID", errs.ErrInvalidParameter))

	bundle, err := i18n.NewBundle()
	require.NoError(t, err)
	d := NewDispatcher(client, Templates{}, logger.Nop())
	err = d.SendVerificationEmail(context.Background(), bundle.For(domain.LanguageEnglish), VerificationEmailRequest{})
	assert.EqualError(t, err, "Unable to send verification email. Please try again.")
}

func TestDispatcher_Concurrent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	client := providermocks.NewMockClient(ctrl)
	client.EXPECT().SendSMS(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Receipt{}, errors.New("rate limited")).Times(20)

	bundle, err := i18n.NewBundle()
	require.NoError(t, err)
	core, logs := observer.New(zapcore.ErrorLevel)
	d := NewDispatcher(client, testTemplates, logger.FromCore(core))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			lang := domain.LanguageEnglish
			if i%2 == 1 {
				lang = domain.LanguageFrench
			}
			err := d.SendAuthTextMsg(context.Background(), bundle.For(lang), AuthTextMsgRequest{User: testUser(lang)})
			assert.Equal(t, bundle.For(lang).T(domain.MsgUnableToAuthenticate), err.Error())
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 20, logs.Len())
}
