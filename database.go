package main

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func initDB(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		category TEXT NOT NULL,
		title TEXT NOT NULL,
		content TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		expires_at DATETIME NOT NULL
	);`

	_, err := db.Exec(schema)
	return err
}

// seedDB populates an empty posts table with the default schedule entries.
// It only runs when the table has no rows at all, so a board that has been
// edited (or even fully cleared mid-run) is never reseeded behind the
// admin's back. Restarting with an empty table seeds again.
func seedDB(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM posts").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	posts := []Post{
		{
			Category: "전체 일정",
			Title:    "실습 프로젝트 기간",
			Content:  "12월 10일 ~ 1월 5일",
		},
		{
			Category: "일일 일정",
			Title:    "12월 2일 화요일 업무",
			Content: `- 프로젝트 세부 주제 결정을 위한 자료 탐색
- 세부 주제 선정
  - 주제 선정 제안서 : 공유폴더에 제출
- 팀 프로젝트 일정 계획 수립

- 오전 9시 : 시작 팀 회의 / 금일 작업 내용 계획
- 오후 5시 : 마감 팀 회의
  - 작업 완료 내용 공유
  - 코드 리뷰 등 정보 공유
  - 문제 발생시 대책 방안 회의`,
		},
		{
			Category: "수업 공지",
			Title:    "금주 수업 시간표",
			Content: `- 수 10시 ~ 1시 : 리눅스 기초
- 목 10시 ~ 1시 : ssh로 리눅스 서버에 원격 접속하기
- 금 10시 ~ 1시 : crontab을 이용한 배치작업`,
		},
		{
			Category: "팀 구성",
			Title:    "A team",
			Content: `- 주제: 사용자 리뷰를 활용한 스마트 상권 감성 분석 서비스
- 팀원: 팀원 명단 작성하기 `,
		},
		{
			Category: "팀 구성",
			Title:    "B team",
			Content: `- 주제: AI기반 뉴스 분석을 이용한 주식 투자 어드바이저 서비스
- 팀원: 팀원 명단 작성하기`,
		},
	}

	stmt := "INSERT INTO posts (category, title, content) VALUES (?, ?, ?)"
	for _, post := range posts {
		_, err := db.Exec(stmt, post.Category, post.Title, post.Content)
		if err != nil {
			return err
		}
	}

	fmt.Println("successfully seeded default posts")
	return nil
}
