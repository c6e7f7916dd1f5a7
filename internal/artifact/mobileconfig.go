// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package artifact

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/uuid"
)

// newUUID is swapped in tests.
var newUUID = uuid.New

var profileTemplate = template.Must(template.New("mobileconfig").
	Funcs(template.FuncMap{
		"xml":      escapeXML,
		"wgconfig": escapeWireGuardConfig,
	}).
	Parse(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>PayloadContent</key>
	<array>
		<dict>
			<key>PayloadDisplayName</key>
			<string>{{xml .DisplayName}}</string>
			<key>PayloadEnabled</key>
			<true/>
			<key>PayloadIdentifier</key>
			<string>{{xml .IdentifierPrefix}}.wireguard.{{.InnerUUID}}</string>
			<key>PayloadType</key>
			<string>com.wireguard.ios.config</string>
			<key>PayloadUUID</key>
			<string>{{.InnerUUID}}</string>
			<key>PayloadVersion</key>
			<integer>1</integer>
			<key>WireGuardConfig</key>
			<string>{{wgconfig .WireGuardConfig}}</string>
		</dict>
	</array>
	<key>PayloadDisplayName</key>
	<string>{{xml .DisplayName}}</string>
	<key>PayloadIdentifier</key>
	<string>{{xml .IdentifierPrefix}}.{{.OuterUUID}}</string>
	<key>PayloadRemovalDisallowed</key>
	<false/>
	<key>PayloadType</key>
	<string>Configuration</string>
	<key>PayloadUUID</key>
	<string>{{.OuterUUID}}</string>
	<key>PayloadVersion</key>
	<integer>1</integer>
</dict>
</plist>
`))

// MobileConfig describes an iOS configuration profile that installs a single
// WireGuard tunnel.
type MobileConfig struct {
	// DisplayName is shown by iOS in Settings, e.g. "S24 VPN - London".
	DisplayName string
	// IdentifierPrefix is the reverse-DNS namespace of the payload
	// identifiers, e.g. "com.s24vpn".
	IdentifierPrefix string
	// WireGuardConfig is the raw wg-quick text returned by the upstream.
	WireGuardConfig string
}

type profileData struct {
	MobileConfig
	OuterUUID string
	InnerUUID string
}

// Render produces the profile XML. Each call draws two fresh upper-case
// UUIDs, one per payload, and they never coincide.
func (m MobileConfig) Render() ([]byte, error) {
	outer, inner := payloadUUIDs()

	var buf bytes.Buffer
	if err := profileTemplate.Execute(&buf, profileData{
		MobileConfig: m,
		OuterUUID:    outer,
		InnerUUID:    inner,
	}); err != nil {
		return nil, fmt.Errorf("error rendering mobileconfig: %w", err)
	}

	return buf.Bytes(), nil
}

// IdentifierPrefix derives the reverse-DNS payload namespace of a brand:
// "s24" becomes "com.s24vpn".
func IdentifierPrefix(brand string) string {
	return "com." + strings.ReplaceAll(Slug(brand), "-", "") + "vpn"
}

func payloadUUIDs() (outer, inner string) {
	outer = strings.ToUpper(newUUID().String())
	inner = strings.ToUpper(newUUID().String())
	for inner == outer {
		inner = strings.ToUpper(newUUID().String())
	}
	return outer, inner
}

func escapeXML(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// escapeWireGuardConfig flattens the config into one plist string: line
// breaks become the two characters `\n`, then XML metacharacters are
// escaped.
func escapeWireGuardConfig(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", `\n`)
	return escapeXML(s)
}
