// balancectl consulta el listado de deudas/anticipos desde la terminal usando
// la misma configuración y base de datos que la API.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
