package utils

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	log "github.com/sirupsen/logrus"
)

var sesClient *ses.Client

func InitMailer(ctx context.Context) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return fmt.Errorf("load AWS config: %w", err)
	}
	sesClient = ses.NewFromConfig(cfg)
	return nil
}

func sendEmail(ctx context.Context, to, subject, body string) error {
	if sesClient == nil {
		return fmt.Errorf("mailer not initialized")
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	if _, err := sesClient.SendEmail(ctx, input); err != nil {
		log.WithError(err).Warn("SES send failed")
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

func SendResetEmail(ctx context.Context, to, code string) error {
	subject := "Password Reset Code"
	body := fmt.Sprintf("Your password reset code is: %s\n\nUse this in the app to set a new password.", code)
	return sendEmail(ctx, to, subject, body)
}
