package common

// WipeByteArray overwrites b with zeros. Used for plaintext passwords once
// they have been hashed and handed to the dispatcher. Nil is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
