package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config 는 환경 변수(.env 포함)에서 읽는 실행 설정이다.
// 날짜 범위 같은 실행 단위 입력은 플래그로 받고 여기에는 두지 않는다.
type Config struct {
	GroupwareURL string // GROUPWARE_URL
	GroupwareID  string // GROUPWARE_ID
	GroupwarePW  string // GROUPWARE_PW
	DatabaseDSN  string // DATABASE_DSN (비어 있으면 DB 저장 생략)
}

// Load 는 .env 파일이 있으면 읽고, OS 환경 변수로 설정을 채운다.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("ℹ️ .env 파일 없음, OS 환경 변수만 사용합니다")
	}
	return &Config{
		GroupwareURL: os.Getenv("GROUPWARE_URL"),
		GroupwareID:  os.Getenv("GROUPWARE_ID"),
		GroupwarePW:  os.Getenv("GROUPWARE_PW"),
		DatabaseDSN:  os.Getenv("DATABASE_DSN"),
	}
}

// HasCredentials 는 로그인에 필요한 값이 모두 있는지 확인한다.
func (c *Config) HasCredentials() bool {
	return c.GroupwareURL != "" && c.GroupwareID != "" && c.GroupwarePW != ""
}
