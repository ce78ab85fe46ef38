package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"codewithbuder/apperror"
	"codewithbuder/model"

	"cloud.google.com/go/firestore"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthProvider is the process-scoped identity provider. It keeps at most one
// live session; sign-in, sign-up and sign-out notify registered listeners
// synchronously, so callers observe the session change before the call
// returns.
type AuthProvider struct {
	client  *firestore.Client
	captcha CaptchaVerifier
	sms     SMSSender

	mu           sync.Mutex
	current      *model.Session
	listeners    map[int]func(*model.Session)
	nextListener int
}

func NewAuthProvider(client *firestore.Client, captcha CaptchaVerifier, sms SMSSender) *AuthProvider {
	return &AuthProvider{
		client:    client,
		captcha:   captcha,
		sms:       sms,
		listeners: map[int]func(*model.Session){},
	}
}

// OnSessionChange registers cb and invokes it immediately with the current
// session, so a new listener resolves without waiting for the next sign-in.
func (p *AuthProvider) OnSessionChange(cb func(*model.Session)) func() {
	p.mu.Lock()
	id := p.nextListener
	p.nextListener++
	p.listeners[id] = cb
	current := p.current
	p.mu.Unlock()

	cb(current)

	return func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()
	}
}

func (p *AuthProvider) setSession(s *model.Session) {
	p.mu.Lock()
	p.current = s
	ls := make([]func(*model.Session), 0, len(p.listeners))
	for _, cb := range p.listeners {
		ls = append(ls, cb)
	}
	p.mu.Unlock()

	for _, cb := range ls {
		cb(s)
	}
}

// SignUp creates the auth user and its profile document, then starts a
// session for it.
func (p *AuthProvider) SignUp(ctx context.Context, email, password, firstName, lastName string) (*model.Session, error) {
	snap, err := p.userByField(ctx, "email", email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if snap != nil {
		return nil, apperror.AuthFailure("Email is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	uid := uuid.New().String()
	profile := model.Profile{
		UID:       uid,
		Email:     email,
		Password:  string(hashed),
		FirstName: firstName,
		LastName:  lastName,
		FullName:  strings.TrimSpace(firstName + " " + lastName),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if _, err := p.client.Collection("users").Doc(uid).Set(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	session := &model.Session{SessionID: uid, EmailOrPhone: email, IssuedAt: time.Now()}
	p.setSession(session)
	return session, nil
}

// SignIn checks credentials against the stored profile document and starts
// a session. Credential mismatches surface as AuthFailure and are never
// retried here.
func (p *AuthProvider) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	snap, err := p.userByField(ctx, "email", email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if snap == nil {
		return nil, apperror.AuthFailure("user not found")
	}

	var user model.Profile
	if err := snap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperror.AuthFailure("invalid password")
	}

	session := &model.Session{SessionID: user.UID, EmailOrPhone: email, IssuedAt: time.Now()}
	p.setSession(session)
	return session, nil
}

// SignOut clears the live session. Listeners run before this returns, so
// the binder has already republished a nil identity when the caller
// navigates away.
func (p *AuthProvider) SignOut(ctx context.Context) error {
	p.setSession(nil)
	return nil
}

// AccessToken issues the HS256 bearer token for a session.
func (p *AuthProvider) AccessToken(s *model.Session) (string, error) {
	secret := []byte(os.Getenv("JWT_SECRET_KEY"))
	claims := &model.AccessClaims{
		SessionID: s.SessionID,
		Email:     s.EmailOrPhone,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "codewithbuder",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(60 * time.Minute)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// PendingVerification is an in-flight phone verification. Confirm spends
// the code that was delivered to the number.
type PendingVerification struct {
	provider *AuthProvider
	Phone    string
	Ref      string
}

func (v *PendingVerification) Confirm(ctx context.Context, code string) (*model.Session, error) {
	return v.provider.ConfirmPhoneVerification(ctx, v.Phone, v.Ref, code)
}

// StartPhoneVerification assesses the captcha challenge, rate-limits the
// number, stores an OTP record and delivers the code. Overlapping attempts
// for one number each get their own REF; behavior across concurrent
// attempts is not defined beyond that.
func (p *AuthProvider) StartPhoneVerification(ctx context.Context, phone, captchaToken string) (*PendingVerification, error) {
	if p.captcha != nil {
		ok, err := p.captcha.Verify(ctx, captchaToken, "phone_signup")
		if err != nil {
			return nil, fmt.Errorf("captcha assessment failed: %w", err)
		}
		if !ok {
			return nil, apperror.AuthFailure("captcha verification failed")
		}
	}

	blocked, err := IsPhoneBlocked(ctx, p.client, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check phone status: %w", err)
	}
	if blocked {
		return nil, apperror.AuthFailure("Too many OTP requests. Please try again later.")
	}

	shouldBlock, err := CheckAndBlockPhone(ctx, p.client, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check OTP request count: %w", err)
	}
	if shouldBlock {
		return nil, apperror.AuthFailure("Too many OTP requests. This number has been blocked temporarily.")
	}

	otp, err := GenerateOTP(6)
	if err != nil {
		return nil, err
	}
	ref := GenerateREF(10)

	if err := SavePhoneOTPRecord(ctx, p.client, phone, otp, ref); err != nil {
		return nil, fmt.Errorf("failed to store OTP record: %w", err)
	}
	if err := p.sms.SendOTP(phone, otp, ref); err != nil {
		return nil, fmt.Errorf("failed to deliver OTP: %w", err)
	}

	return &PendingVerification{provider: p, Phone: phone, Ref: ref}, nil
}

// ConfirmPhoneVerification checks the code for the given REF, creating the
// user for first-time numbers, and starts a session.
func (p *AuthProvider) ConfirmPhoneVerification(ctx context.Context, phone, ref, code string) (*model.Session, error) {
	ok, err := VerifyPhoneOTP(ctx, p.client, phone, ref, code)
	if err != nil {
		return nil, fmt.Errorf("failed to verify OTP: %w", err)
	}
	if !ok {
		return nil, apperror.AuthFailure("invalid or expired OTP")
	}

	snap, err := p.userByField(ctx, "phone", phone)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	var uid string
	if snap != nil {
		var user model.Profile
		if err := snap.DataTo(&user); err != nil {
			return nil, fmt.Errorf("failed to parse user data: %w", err)
		}
		uid = user.UID
	} else {
		uid = uuid.New().String()
		profile := model.Profile{
			UID:       uid,
			Phone:     phone,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		}
		if _, err := p.client.Collection("users").Doc(uid).Set(ctx, profile); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	}

	session := &model.Session{SessionID: uid, EmailOrPhone: phone, IssuedAt: time.Now()}
	p.setSession(session)
	return session, nil
}

func (p *AuthProvider) userByField(ctx context.Context, field, value string) (*firestore.DocumentSnapshot, error) {
	docs, err := p.client.Collection("users").Where(field, "==", value).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0], nil
}
