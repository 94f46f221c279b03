package sms

import (
	"context"
	"fmt"
	"strings"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dysmsapi "github.com/alibabacloud-go/dysmsapi-20170525/v4/client"
	"github.com/alibabacloud-go/tea/tea"
	"github.com/canada-ca/tracker-sub005/internal/domain"
	"github.com/canada-ca/tracker-sub005/internal/errs"
	"github.com/canada-ca/tracker-sub005/internal/service/provider"
)

const aliyunEndpoint = "dysmsapi.aliyuncs.com"

var _ provider.Client = (*AliyunSMS)(nil)

// aliyunAPI is the part of the dysmsapi client we use.
type aliyunAPI interface {
	SendSms(request *dysmsapi.SendSmsRequest) (*dysmsapi.SendSmsResponse, error)
}

// AliyunSMS sends text messages through Alibaba Cloud SMS.
type AliyunSMS struct {
	client   aliyunAPI
	signName string
}

func (c *AliyunSMS) SendEmail(context.Context, string, string, provider.SendOptions) (domain.Receipt, error) {
	return domain.Receipt{}, fmt.Errorf("%w: aliyun only sends %s", errs.ErrUnsupportedChannel, domain.ChannelSMS)
}

func (c *AliyunSMS) SendSMS(_ context.Context, templateID, address string, opts provider.SendOptions) (domain.Receipt, error) {
	msg := domain.Message{Channel: domain.ChannelSMS, TemplateID: templateID, Address: address}
	if err := msg.Validate(); err != nil {
		return domain.Receipt{}, err
	}
	templateParam, err := jsonParams(opts.Personalisation)
	if err != nil {
		return domain.Receipt{}, err
	}

	request := &dysmsapi.SendSmsRequest{
		PhoneNumbers:  tea.String(address),
		SignName:      tea.String(c.signName),
		TemplateCode:  tea.String(templateID),
		TemplateParam: tea.String(templateParam),
	}
	if opts.Reference != "" {
		request.OutId = tea.String(opts.Reference)
	}
	response, err := c.client.SendSms(request)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("%w: %w", errs.ErrSendFailed, err)
	}

	if response == nil || response.Body == nil || response.Body.Code == nil {
		return domain.Receipt{}, fmt.Errorf("%w: empty aliyun response", errs.ErrSendFailed)
	}
	if !strings.EqualFold(*response.Body.Code, OK) {
		return domain.Receipt{}, fmt.Errorf("%w: Code = %s, Message = %s",
			errs.ErrSendFailed, *response.Body.Code, tea.StringValue(response.Body.Message))
	}

	return domain.Receipt{
		ID:        tea.StringValue(response.Body.BizId),
		Reference: opts.Reference,
		Provider:  "aliyun",
		Status:    domain.SendStatusSucceeded,
	}, nil
}

// NewAliyunSMS builds the client against the public dysmsapi endpoint.
func NewAliyunSMS(regionID, accessKeyID, accessKeySecret, signName string) (*AliyunSMS, error) {
	if accessKeyID == "" || accessKeySecret == "" {
		return nil, fmt.Errorf("%w: aliyun access key is empty", errs.ErrProviderNotConfigured)
	}
	config := &openapi.Config{
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
		RegionId:        tea.String(regionID),
		Endpoint:        tea.String(aliyunEndpoint),
	}

	client, err := dysmsapi.NewClient(config)
	if err != nil {
		return nil, err
	}
	return &AliyunSMS{client: client, signName: signName}, nil
}
