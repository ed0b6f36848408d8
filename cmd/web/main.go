// @title           Torami API
// @version         1.0
// @description     Backend for the Torami convention platform (stands, cosplay, gallery, giveaways).
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /

package main

import "torami_backend/internal/app"

func main() {
	app.Run()
}
