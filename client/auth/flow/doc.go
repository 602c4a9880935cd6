// Package flow moves the operator's browsing context to auth API pages that
// have no JSON contract, such as the Google OAuth login redirect.
package flow
