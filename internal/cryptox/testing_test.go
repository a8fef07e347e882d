package cryptox

// fastParams keeps Argon2 cheap in tests.
var fastParams = KDFParams{Memory: 64, Iterations: 1, Parallelism: 1}
