package repository

// CounterRepository contador monótono por clave, respaldado por el storage.
// El incremento debe ser una sola operación atómica (upsert + increment), nunca
// read-modify-write, para ser correcto con varias instancias del servidor.
type CounterRepository interface {
	Next(key string) (int64, error)
}
