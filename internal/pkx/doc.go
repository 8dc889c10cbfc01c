// Package pkx implements the fixed-size encrypted record codec used by the
// game's stored creature data.
//
// A record is 344 bytes: a 32-bit encryption constant, four bytes of
// sanity/checksum, then four 80-byte blocks. Decryption XORs a linear
// congruential key stream over everything past the header, then reorders the
// four blocks with a permutation selected by bits 13..17 of the encryption
// constant. There is no integrity check; malformed input decodes to garbage
// silently, and correctness rests on the fixture vectors in the tests.
package pkx
