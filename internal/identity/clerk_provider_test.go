package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *ClerkProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	config := &clerk.ClientConfig{}
	config.Key = clerk.String("sk_test_123")
	config.URL = clerk.String(srv.URL)
	config.HTTPClient = srv.Client()
	return NewClerkProvider(config)
}

func TestClerkProvider_GetUserProfile(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/user_1", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "user_1",
			"object": "user",
			"first_name": "Ann",
			"last_name": null,
			"primary_email_address_id": "idn_2",
			"email_addresses": [
				{"id": "idn_1", "object": "email_address", "email_address": "old@x.com"},
				{"id": "idn_2", "object": "email_address", "email_address": "a@x.com"}
			]
		}`))
	})

	profile, err := p.GetUserProfile(context.Background(), "user_1")

	require.NoError(t, err)
	require.NotNil(t, profile.PrimaryEmail)
	assert.Equal(t, "a@x.com", *profile.PrimaryEmail)
	assert.Equal(t, "Ann", *profile.FirstName)
	assert.Nil(t, profile.LastName)
}

func TestClerkProvider_GetUserProfile_Error(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errors":[{"code":"resource_not_found","message":"not found"}]}`))
	})

	profile, err := p.GetUserProfile(context.Background(), "user_missing")

	assert.Nil(t, profile)
	assert.Error(t, err)
}

func TestClerkProvider_GetOrganization(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/organizations/org_1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "org_1", "object": "organization", "name": "Acme"}`))
	})

	org, err := p.GetOrganization(context.Background(), "org_1")

	require.NoError(t, err)
	assert.Equal(t, "Acme", *org.Name)
}

func TestPrimaryEmail(t *testing.T) {
	testCases := []struct {
		name     string
		user     *clerk.User
		expected *string
	}{
		{name: "Nil user", user: nil},
		{name: "No addresses", user: &clerk.User{}},
		{
			name: "Primary flagged",
			user: &clerk.User{
				PrimaryEmailAddressID: clerk.String("idn_2"),
				EmailAddresses: []*clerk.EmailAddress{
					{ID: "idn_1", EmailAddress: "first@x.com"},
					{ID: "idn_2", EmailAddress: "primary@x.com"},
				},
			},
			expected: clerk.String("primary@x.com"),
		},
		{
			name: "Falls back to first",
			user: &clerk.User{
				PrimaryEmailAddressID: clerk.String("idn_gone"),
				EmailAddresses: []*clerk.EmailAddress{
					{ID: "idn_1", EmailAddress: "first@x.com"},
				},
			},
			expected: clerk.String("first@x.com"),
		},
		{
			name: "No primary id",
			user: &clerk.User{
				EmailAddresses: []*clerk.EmailAddress{
					{ID: "idn_1", EmailAddress: ""},
					{ID: "idn_2", EmailAddress: "second@x.com"},
				},
			},
			expected: clerk.String("second@x.com"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PrimaryEmail(tc.user))
		})
	}
}
