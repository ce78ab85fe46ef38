package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// IsPhoneBlocked reports whether the number is temporarily blocked from
// requesting more OTPs. Expired blocks are cleaned up on read.
func IsPhoneBlocked(ctx context.Context, client *firestore.Client, phone string) (bool, error) {
	blockedRef := client.Collection("PhoneBlocked").Doc(phone)

	blockedDoc, err := blockedRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, err
	}

	if blockedDoc.Exists() {
		data := blockedDoc.Data()
		if expiresAt, ok := data["expiresAt"].(time.Time); ok {
			if time.Now().Before(expiresAt) {
				return true, nil
			}
			if _, err := blockedRef.Delete(ctx); err != nil {
				return false, err
			}
		}
	}

	return false, nil
}

// CheckAndBlockPhone counts outstanding OTP records for the number and
// blocks it once three are live.
func CheckAndBlockPhone(ctx context.Context, client *firestore.Client, phone string) (bool, error) {
	iter := client.Collection("PhoneOTPRecords").Doc(phone).Collection("attempts").Documents(ctx)
	defer iter.Stop()

	var otpCount int
	currentTime := time.Now()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return false, err
		}

		data := doc.Data()
		expiresAt, ok := data["expiresAt"].(time.Time)
		if !ok {
			otpCount++
			continue
		}
		if currentTime.Before(expiresAt) {
			otpCount++
		}
	}

	if otpCount >= 3 {
		if err := BlockPhone(ctx, client, phone); err != nil {
			return false, err
		}
		return true, nil
	}

	return false, nil
}

func BlockPhone(ctx context.Context, client *firestore.Client, phone string) error {
	blockTime := time.Now()
	blockData := map[string]interface{}{
		"phone":     phone,
		"createdAt": blockTime,
		"expiresAt": blockTime.Add(10 * time.Minute),
	}

	_, err := client.Collection("PhoneBlocked").Doc(phone).Set(ctx, blockData)
	return err
}

// SavePhoneOTPRecord stores one verification attempt keyed by its REF, so
// overlapping attempts never overwrite each other.
func SavePhoneOTPRecord(ctx context.Context, client *firestore.Client, phone, otp, ref string) error {
	otpData := map[string]interface{}{
		"phone":     phone,
		"otp":       otp,
		"reference": ref,
		"is_used":   "0",
		"createdAt": time.Now(),
		"expiresAt": time.Now().Add(15 * time.Minute),
	}

	_, err := client.Collection("PhoneOTPRecords").Doc(phone).Collection("attempts").Doc(ref).Set(ctx, otpData)
	return err
}

// VerifyPhoneOTP checks the record for ref and marks it used on success.
// Missing, expired, spent or mismatched codes all report false without an
// error.
func VerifyPhoneOTP(ctx context.Context, client *firestore.Client, phone, ref, code string) (bool, error) {
	docRef := client.Collection("PhoneOTPRecords").Doc(phone).Collection("attempts").Doc(ref)

	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, err
	}

	data := doc.Data()
	if used, _ := data["is_used"].(string); used != "0" {
		return false, nil
	}
	if expiresAt, ok := data["expiresAt"].(time.Time); !ok || time.Now().After(expiresAt) {
		return false, nil
	}
	if otp, _ := data["otp"].(string); otp != code {
		return false, nil
	}

	if _, err := docRef.Update(ctx, []firestore.Update{{Path: "is_used", Value: "1"}}); err != nil {
		return false, err
	}
	return true, nil
}

func GenerateOTP(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("length must be greater than 0")
	}

	var otp strings.Builder
	for i := 0; i < length; i++ {
		otp.WriteString(string(rune('0' + rand.Intn(10))))
	}

	return otp.String(), nil
}

func GenerateREF(length int) string {
	const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	var ref strings.Builder
	for i := 0; i < length; i++ {
		ref.WriteByte(characters[rand.Intn(len(characters))])
	}

	return ref.String()
}
