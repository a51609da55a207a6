package main

import (
    "os"

    "github.com/Nikhil8847/calify/config"
    "github.com/Nikhil8847/calify/routes"
    "github.com/Nikhil8847/calify/utils"
)

func main() {
    config.InitDB()
    if os.Getenv("S3_BUCKET") != "" {
        utils.InitS3() // voice-clip archival is optional
    }
    r := routes.SetupRouter()
    r.Run(":8080")
}
