package services

import (
	"context"
	"fmt"
	"os"

	recaptcha "cloud.google.com/go/recaptchaenterprise/v2/apiv1"
	"cloud.google.com/go/recaptchaenterprise/v2/apiv1/recaptchaenterprisepb"
	"google.golang.org/api/option"
)

// CaptchaVerifier assesses the challenge handle presented when a phone
// verification starts.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, action string) (bool, error)
}

// RecaptchaVerifier scores tokens with reCAPTCHA Enterprise. Invalid
// tokens, action mismatches and low scores all report false without an
// error; only transport/API failures error.
type RecaptchaVerifier struct {
	ProjectID       string
	SiteKey         string
	CredentialsPath string
	MinScore        float32
}

func NewRecaptchaVerifierFromEnv() *RecaptchaVerifier {
	return &RecaptchaVerifier{
		ProjectID:       os.Getenv("GOOGLE_CLOUD_PROJECT_ID"),
		SiteKey:         os.Getenv("RECAPTCHA_SITE_KEY"),
		CredentialsPath: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		MinScore:        0.5,
	}
}

func (v *RecaptchaVerifier) Verify(ctx context.Context, token, action string) (bool, error) {
	client, err := recaptcha.NewClient(ctx, option.WithCredentialsFile(v.CredentialsPath))
	if err != nil {
		return false, err
	}
	defer client.Close()

	req := &recaptchaenterprisepb.CreateAssessmentRequest{
		Parent: fmt.Sprintf("projects/%s", v.ProjectID),
		Assessment: &recaptchaenterprisepb.Assessment{
			Event: &recaptchaenterprisepb.Event{
				Token:   token,
				SiteKey: v.SiteKey,
			},
		},
	}

	response, err := client.CreateAssessment(ctx, req)
	if err != nil {
		return false, err
	}

	if response.TokenProperties == nil || !response.TokenProperties.Valid {
		return false, nil
	}
	if action != "" && response.TokenProperties.Action != action {
		return false, nil
	}
	if response.RiskAnalysis != nil && response.RiskAnalysis.Score < v.MinScore {
		return false, nil
	}

	return true, nil
}
