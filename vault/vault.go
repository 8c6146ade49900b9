package vault

import (
	"fmt"

	"github.com/hashicorp/vault/api"
)

// Vault reads service secrets (geocoding api key, twilio credentials) from a
// kv mount.
type Vault struct {
	SecretPath string
	*api.Client
}

func New(token, unsealKey, address, secretPath string) (*Vault, error) {
	config := &api.Config{
		Address: address,
	}

	client, err := api.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("new: error initializing vault: %w", err)
	}

	client.SetToken(token)

	s := client.Sys()
	status, err := s.SealStatus()
	if err != nil {
		return nil, fmt.Errorf("new: error getting seal status: %w", err)
	}

	if status.Sealed {
		unsealResponse, err := s.Unseal(unsealKey)
		if err != nil {
			return nil, fmt.Errorf("new: error unsealing vault: %w", err)
		}
		if unsealResponse.Sealed {
			return nil, fmt.Errorf("new: vault unseal unsuccessful")
		}
	}

	err = mountIfNotExists(client, secretPath)
	if err != nil {
		return nil, fmt.Errorf("new: unable to mount secret path: %w", err)
	}

	return &Vault{SecretPath: secretPath, Client: client}, nil
}

// Secret returns the named field from the credentials secret under
// SecretPath.
func (v *Vault) Secret(field string) (string, error) {
	path := fmt.Sprintf("%s/credentials", v.SecretPath)
	secret, err := v.Logical().Read(path)
	if err != nil {
		return "", fmt.Errorf("secret: error reading %s: %w", path, err)
	}

	if secret == nil || secret.Data == nil {
		return "", fmt.Errorf("secret: no data at %s", path)
	}

	value, ok := secret.Data[field].(string)
	if !ok {
		return "", fmt.Errorf("secret: field %s not found at %s", field, path)
	}

	return value, nil
}

func mountIfNotExists(client *api.Client, path string) error {
	mounts, err := client.Sys().ListMounts()
	if err != nil {
		return fmt.Errorf("mountIfNotExists: unable to list mounts: %w", err)
	}

	if _, ok := mounts[path+"/"]; !ok {
		err = client.Sys().Mount(path, &api.MountInput{Type: "kv"})
		if err != nil {
			return fmt.Errorf("mountIfNotExists: unable to create path: %w", err)
		}
	}

	return nil
}
