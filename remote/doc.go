// Package remote moves entry lists (see package entry) to and from
// places other than the local disk: http(s) urls, S3-compatible
// storage (via minio client) and servers reachable over ssh.
//
// Files use the same format as entry.Save and are compressed
// based on the extension of remote path (.gz, .zst, .br).
package remote
