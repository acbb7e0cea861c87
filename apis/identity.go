/*
   Copyright 2026 The Mobile Shell Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import "context"

// LoginResult is the outcome of an interactive login.
// When OK is false, Error holds a human-readable reason and the token fields are empty.
type LoginResult struct {
	OK           bool   `json:"ok"`
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	IDToken      string `json:"idToken,omitempty"`
	Error        string `json:"error,omitempty"`
}

// LogoutResult is the outcome of a logout call.
type LogoutResult struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// IdentityProvider is the login/logout collaborator of the shell.
// Implementations report failures in the result and never panic.
type IdentityProvider interface {
	Login(ctx context.Context) LoginResult
	Logout(ctx context.Context, refreshToken string) LogoutResult
}
