package kvbackend

import (
	"strings"

	"github.com/pkg/errors"
)

// splitKey splits a key into bucket and name at the last slash:
//
//	records/Tenant/t1  ->  records/Tenant, t1
func splitKey(key string) (bucket, name string, err error) {
	slash := strings.LastIndex(key, "/")
	switch {
	case slash == -1:
		return "", "", errors.Errorf("key %q has no bucket", key)
	case strings.HasPrefix(key, "/"), slash == len(key)-1:
		return "", "", errors.Errorf("key %q has a leading or trailing slash", key)
	}
	return key[:slash], key[slash+1:], nil
}
