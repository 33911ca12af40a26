package vtex

import "github.com/goliatone/go-commerce-vtex/core"

// SettingDefinition describes one operator-facing connection setting.
type SettingDefinition struct {
	Name         string `json:"name"`
	FriendlyName string `json:"friendlyName,omitempty"`
	Type         string `json:"type"`
	HelperText   string `json:"helperText"`
	Required     bool   `json:"required"`
}

// Definition is the registration metadata a host uses to render the
// connection form for this provider.
type Definition struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Settings []SettingDefinition `json:"settings"`
	CTAText  string              `json:"ctaText"`
}

const (
	SettingAccountName = "accountName"
	SettingSecretKey   = "secretKey"
	SettingAccessKey   = "accessKey"
)

func NewDefinition() Definition {
	return Definition{
		ID:   ProviderID,
		Name: "Vtex",
		Settings: []SettingDefinition{
			{
				Name:       SettingAccountName,
				Type:       "string",
				HelperText: "Get your accountname from your account details in Vtex admin dashboard, on (/admin/license-manager/#/account-details)",
				Required:   true,
			},
			{
				Name:         SettingSecretKey,
				FriendlyName: "Application Secret",
				Type:         "string",
				HelperText:   `Get your application secret from "{{account name}}.myvtex.com/admin/mykeys" and copy the application secret, or generate a new one if you don't have keys configured`,
				Required:     true,
			},
			{
				Name:         SettingAccessKey,
				FriendlyName: "Application Key",
				Type:         "string",
				HelperText:   `Get your application key from "{{account name}}.myvtex.com/admin/mykeys" and copy the application key, or generate a new one if you don't have keys configured`,
				Required:     true,
			},
		},
		CTAText: "Connect your Vtex store",
	}
}

// CredentialsFromSettings reads the three connection settings from the
// values a host collected with the Definition form.
func CredentialsFromSettings(values map[string]string) core.Credentials {
	return core.Credentials{
		AccountName: values[SettingAccountName],
		SecretKey:   values[SettingSecretKey],
		AccessKey:   values[SettingAccessKey],
	}
}
