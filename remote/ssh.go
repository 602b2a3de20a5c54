package remote

import (
	"errors"
	"path"
	"time"

	"github.com/kjk/qentry/entry"
	"github.com/kjk/qentry/log"
	"github.com/kjk/qentry/u"
	"github.com/melbahja/goph"
	"github.com/pkg/sftp"
)

type SSHConfig struct {
	User string
	Host string
	// 22 if not given
	Port           uint
	PrivateKeyPath string
	Passphrase     string
	// 20 seconds if not given
	Timeout time.Duration
}

func (c *SSHConfig) validate() error {
	if c == nil {
		return errors.New("must provide config")
	}
	if c.User == "" || c.Host == "" || c.PrivateKeyPath == "" {
		return errors.New("must provide User, Host and PrivateKeyPath")
	}
	return nil
}

func writeListSftp(sc *sftp.Client, remotePath string, l *entry.List, encode bool) (int, error) {
	dir := path.Dir(remotePath)
	if err := sc.MkdirAll(dir); err != nil {
		return 0, err
	}
	f, err := sc.Create(remotePath)
	if err != nil {
		return 0, err
	}
	wc, err := u.NewWriterMaybeCompressed(f, remotePath)
	if err != nil {
		_ = f.Close()
		_ = sc.Remove(remotePath)
		return 0, err
	}
	n, err := l.WriteText(wc, remotePath, encode, time.Now())
	errClose := wc.Close()
	errFileClose := f.Close()
	err = errors.Join(err, errClose, errFileClose)
	if err != nil {
		// don't leave partially written file
		_ = sc.Remove(remotePath)
		return 0, err
	}
	return n, nil
}

// UploadSSH saves l as remotePath on a server, over sftp.
// Server's host key must be in ~/.ssh/known_hosts
func UploadSSH(config *SSHConfig, remotePath string, l *entry.List, encode bool) (int, error) {
	if err := config.validate(); err != nil {
		return 0, err
	}
	auth, err := goph.Key(config.PrivateKeyPath, config.Passphrase)
	if err != nil {
		return 0, err
	}
	callback, err := goph.DefaultKnownHosts()
	if err != nil {
		return 0, err
	}
	port := config.Port
	if port == 0 {
		port = 22
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 20 * time.Second
	}
	client, err := goph.NewConn(&goph.Config{
		User:     config.User,
		Addr:     config.Host,
		Port:     port,
		Auth:     auth,
		Timeout:  timeout,
		Callback: callback,
	})
	if err != nil {
		return 0, err
	}
	defer u.CloseNoError(client)

	sc, err := client.NewSftp()
	if err != nil {
		return 0, err
	}
	defer u.CloseNoError(sc)

	n, err := writeListSftp(sc, remotePath, l, encode)
	if log.IfErrf(err, "remote.UploadSSH: writing '%s' to %s failed with '%s'", remotePath, config.Host, err) {
		return 0, err
	}
	log.Event("remote-ssh", "host", config.Host, "path", remotePath, "count", n)
	return n, nil
}
