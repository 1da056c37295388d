package ons

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/onsmq/ons-client-go/fastjson"
)

const (
	credentialDir  = "ons"
	credentialFile = "credential"
)

// the keys imported from the credential file, in the import order
var credentialKeys = []string{AccessKey, SecretKey, NameSrvAddr, GroupID}

// loadCredentialFile overlays the credential file under the home directory
// on the current properties. The file is advisory, every failure is logged
// and swallowed.
func (p *FactoryProperty) loadCredentialFile() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	p.overlayCredentialFile(filepath.Join(home, credentialDir, credentialFile))
}

func (p *FactoryProperty) overlayCredentialFile(path string) {
	st, err := os.Stat(path)
	if err != nil || !st.Mode().IsRegular() {
		p.logger.Infof("no default config file found at %s", path)
		return
	}

	d, err := ioutil.ReadFile(path)
	if err != nil {
		p.logger.Warnf("failed to read config file %s:%s", path, err)
		return
	}

	fields, err := fastjson.StringValues(d)
	if err != nil {
		p.logger.Warnf("failed to parse config JSON of %s:%s", path, err)
		return
	}

	for _, k := range credentialKeys {
		v, ok := fields[k]
		if !ok {
			continue
		}

		if err := p.SetProperty(k, v); err != nil {
			p.logger.Warnf("drop %s of the default config file:%s", k, err)
			continue
		}
		p.logger.Infof("set %s through default config file", k)
	}
}
