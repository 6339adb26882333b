package client

import "context"

// SignInRequest represents a sign-in request
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest represents a registration request
type SignUpRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// AuthResponse carries the token, the landing path, and the user
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	Redirect    string `json:"redirect"`
	User        *User  `json:"user"`
}

// Session represents the current session state
type Session struct {
	Authenticated bool  `json:"authenticated"`
	User          *User `json:"user,omitempty"`
}

// SignIn authenticates with email and password
func (c *Client) SignIn(ctx context.Context, email, password string) (*AuthResponse, error) {
	req := SignInRequest{
		Email:    email,
		Password: password,
	}

	var resp AuthResponse
	if err := c.doRequest(ctx, "POST", "/api/v1/auth/signin", req, &resp); err != nil {
		return nil, err
	}

	// Automatically set the token for future requests
	if resp.AccessToken != "" {
		c.SetToken(resp.AccessToken)
	}

	return &resp, nil
}

// SignUp creates a new account and signs it in
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.doRequest(ctx, "POST", "/api/v1/auth/signup", req, &resp); err != nil {
		return nil, err
	}

	if resp.AccessToken != "" {
		c.SetToken(resp.AccessToken)
	}

	return &resp, nil
}

// CurrentSession retrieves the current session state
func (c *Client) CurrentSession(ctx context.Context) (*Session, error) {
	var session Session
	if err := c.doRequest(ctx, "GET", "/api/v1/auth/me", nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SignOut clears the session on the server and drops the local token
func (c *Client) SignOut(ctx context.Context) error {
	if err := c.doRequest(ctx, "POST", "/api/v1/auth/signout", nil, nil); err != nil {
		return err
	}
	c.SetToken("")
	return nil
}
