package ports

// Notifier define el puerto de salida para los avisos al operador (el "toast" de la UI).
// Los servicios de transporte lo usan para reportar éxito o fallo de cada llamada;
// las capas superiores nunca vuelven a reportar un fallo ya notificado.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Navigator fuerza la navegación del operador. Sólo se usa ante un fallo de autenticación.
type Navigator interface {
	RedirectToLogin()
}
