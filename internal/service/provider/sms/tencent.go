package sms

import (
	"context"
	"fmt"
	"strings"

	"github.com/canada-ca/tracker-sub005/internal/domain"
	"github.com/canada-ca/tracker-sub005/internal/errs"
	"github.com/canada-ca/tracker-sub005/internal/service/provider"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
	tsms "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/sms/v20210111"
)

var _ provider.Client = (*TencentSMS)(nil)

type tencentAPI interface {
	SendSmsWithContext(ctx context.Context, request *tsms.SendSmsRequest) (*tsms.SendSmsResponse, error)
}

// TencentSMS sends text messages through Tencent Cloud SMS.
type TencentSMS struct {
	client   tencentAPI
	appID    string
	signName string
}

func (c *TencentSMS) SendEmail(context.Context, string, string, provider.SendOptions) (domain.Receipt, error) {
	return domain.Receipt{}, fmt.Errorf("%w: tencent only sends %s", errs.ErrUnsupportedChannel, domain.ChannelSMS)
}

func (c *TencentSMS) SendSMS(ctx context.Context, templateID, address string, opts provider.SendOptions) (domain.Receipt, error) {
	msg := domain.Message{Channel: domain.ChannelSMS, TemplateID: templateID, Address: address}
	if err := msg.Validate(); err != nil {
		return domain.Receipt{}, err
	}

	request := tsms.NewSendSmsRequest()
	request.SmsSdkAppId = common.StringPtr(c.appID)
	request.SignName = common.StringPtr(c.signName)
	request.TemplateId = common.StringPtr(templateID)
	request.PhoneNumberSet = common.StringPtrs([]string{address})
	request.TemplateParamSet = common.StringPtrs(orderedParams(opts.Personalisation))
	if opts.Reference != "" {
		request.SessionContext = common.StringPtr(opts.Reference)
	}

	response, err := c.client.SendSmsWithContext(ctx, request)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("%w: %w", errs.ErrSendFailed, err)
	}
	if response == nil || response.Response == nil || len(response.Response.SendStatusSet) == 0 {
		return domain.Receipt{}, fmt.Errorf("%w: empty tencent response", errs.ErrSendFailed)
	}

	status := response.Response.SendStatusSet[0]
	code := stringValue(status.Code)
	if !strings.EqualFold(code, Ok) {
		return domain.Receipt{}, fmt.Errorf("%w: Code = %s, Message = %s",
			errs.ErrSendFailed, code, stringValue(status.Message))
	}
	return domain.Receipt{
		ID:        stringValue(status.SerialNo),
		Reference: opts.Reference,
		Provider:  "tencent",
		Status:    domain.SendStatusSucceeded,
	}, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NewTencentSMS builds the client for the given region.
func NewTencentSMS(regionID, secretID, secretKey, appID, signName string) (*TencentSMS, error) {
	if secretID == "" || secretKey == "" {
		return nil, fmt.Errorf("%w: tencent secret is empty", errs.ErrProviderNotConfigured)
	}
	client, err := tsms.NewClient(common.NewCredential(secretID, secretKey), regionID, profile.NewClientProfile())
	if err != nil {
		return nil, err
	}
	return &TencentSMS{client: client, appID: appID, signName: signName}, nil
}
