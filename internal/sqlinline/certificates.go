package sqlinline

const QCreateCertificatesTable = `--sql 3c1f6a2e-8d47-4b0e-9a51-6f2d7c9e4b10
create table if not exists certificates (
  id varchar primary key,
  seq bigserial not null,
  student_name text not null,
  course_name text not null,
  commission text not null,
  completion_date text not null,
  discord_handle text,
  personal_message text,
  pronouns text,
  certificate_id text not null unique,
  file_url text,
  created_at timestamptz not null default now()
);
`

const QCreateCertificatesIndex = `--sql 8b52d0c4-1e9f-4a7d-b3c6-2a0e5f81d947
create index if not exists certificates_created_at_seq_idx
  on certificates (created_at desc, seq asc);
`

const QInsertCertificate = `--sql 5e7a9c13-4f2b-4d86-8e0a-b19c3d6f7a25
insert into certificates(id, student_name, course_name, commission, completion_date, discord_handle, personal_message, pronouns, certificate_id, file_url, created_at)
values ($1::text, $2::text, $3::text, $4::text, $5::text, $6::text, $7::text, $8::text, $9::text, $10::text, $11::timestamptz);
`

const QGetCertificate = `--sql a4d8e2f1-6b3c-4e97-9f05-c7b1a2d3e8f6
select id, student_name, course_name, commission, completion_date, discord_handle, personal_message, pronouns, certificate_id, file_url, created_at
from certificates
where id = $1::text;
`

const QListCertificates = `--sql 0d6f3b8a-2c5e-47a1-b9d4-e3f7a6c1b852
select id, student_name, course_name, commission, completion_date, discord_handle, personal_message, pronouns, certificate_id, file_url, created_at
from certificates
where ($1::text = '' or course_name = $1::text)
order by created_at desc, seq asc;
`

const QDeleteCertificate = `--sql 7c2e9a4b-5d1f-4083-a6b7-1f8e3c0d9a64
delete from certificates
where id = $1::text;
`

const QPing = `--sql e91b4c7d-3a26-4f58-8d0e-5b7c2a9f1e36
select 1;
`
