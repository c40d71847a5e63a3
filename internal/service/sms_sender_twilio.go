package service

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioConfig holds the notifier credentials, passed in explicitly at
// construction rather than read from ambient state.
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

type TwilioSMSSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSMSSender(config TwilioConfig) (*TwilioSMSSender, error) {
	if config.AccountSID == "" || config.AuthToken == "" || config.FromNumber == "" {
		return nil, fmt.Errorf("missing twilio credentials")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: config.AccountSID,
		Password: config.AuthToken,
	})
	return &TwilioSMSSender{client: client, from: config.FromNumber}, nil
}

func (t *TwilioSMSSender) SendOTP(ctx context.Context, phoneNumber string, code string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(t.from)
	params.SetTo(fmt.Sprintf("+91%s", phoneNumber))
	params.SetBody(fmt.Sprintf("Your GoWheels verification code is %s. It expires in 10 minutes.", code))

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send sms: %w", err)
	}
	if resp.ErrorCode != nil && *resp.ErrorCode != 0 {
		return fmt.Errorf("twilio error %d: %s", *resp.ErrorCode, *resp.ErrorMessage)
	}
	return nil
}
