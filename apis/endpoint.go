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

// EndpointDefinition declares how to compute one destination URL.
//
// Exactly one route applies, in priority order:
//
//	{url}            literal URL, may contain placeholders
//	{baseUrl, path}  literal base joined with path
//	{baseKey, path}  base taken from another entry's url or baseUrl
type EndpointDefinition struct {
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
	BaseKey string `json:"baseKey,omitempty" yaml:"baseKey,omitempty"`
	BaseURL string `json:"baseUrl,omitempty" yaml:"baseUrl,omitempty"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Title   string `json:"title,omitempty" yaml:"title,omitempty"`
}

// EndpointSpec is the endpoint configuration document keyed by endpoint key.
type EndpointSpec map[string]EndpointDefinition

// ResolvedEndpoint is a composed, placeholder-free endpoint.
type ResolvedEndpoint struct {
	Key   string `json:"key"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Substitutions carries caller-supplied placeholder values.
// An empty field means the value was not supplied.
type Substitutions struct {
	AccountNumber string
}

// Account returns the account number and whether one was supplied.
func (s Substitutions) Account() (string, bool) {
	return s.AccountNumber, s.AccountNumber != ""
}
