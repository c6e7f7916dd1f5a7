// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package artifact

import "regexp"

// authUserPassBlock matches the shortest inline credentials block, across
// lines.
var authUserPassBlock = regexp.MustCompile(`(?s)<auth-user-pass>.*?</auth-user-pass>`)

// InjectCredentials embeds username and password into an OpenVPN config.
//
// The first <auth-user-pass> block is replaced; any later blocks are left
// as they are. A body without a block gets one appended after a blank line.
// Applying it twice with the same credentials yields the same text as
// applying it once.
func InjectCredentials(body, username, password string) string {
	block := "<auth-user-pass>\n" + username + "\n" + password + "\n</auth-user-pass>"

	loc := authUserPassBlock.FindStringIndex(body)
	if loc == nil {
		return body + "\n\n" + block + "\n"
	}

	return body[:loc[0]] + block + body[loc[1]:]
}
